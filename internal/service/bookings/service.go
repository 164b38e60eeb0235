package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avlasov/venue-booking-service/internal/domain"
	bookingRepo "github.com/avlasov/venue-booking-service/internal/infra/storage/booking"
	"github.com/avlasov/venue-booking-service/internal/service/bookings/models"
)

// Service сервис чтения и простых операций над бронированиями.
// Операции с проверкой вместимости (создание, редактирование, одобрение)
// живут в отдельных use case с сериализуемыми транзакциями.
type Service struct {
	bookingRepo BookingRepository
	commentRepo CommentRepository
	adminRepo   AdminRepository
	notifier    Notifier
	logger      Logger
}

// NewService создает новый экземпляр сервиса
func NewService(
	bookingRepo BookingRepository,
	commentRepo CommentRepository,
	adminRepo AdminRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		commentRepo: commentRepo,
		adminRepo:   adminRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// List возвращает бронирования с комментариями.
// Обычный пользователь видит только свои заявки, администратор - все.
func (s *Service) List(ctx context.Context, userID int64, sortBy, sortOrder string) ([]*models.BookingResponse, error) {
	s.logger.Info("List: user=%d, sortBy=%q, sortOrder=%q", userID, sortBy, sortOrder)

	isAdmin, err := s.adminRepo.IsAdmin(ctx, userID)
	if err != nil {
		s.logger.Error("List: failed to check admin for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to check admin: %v", ErrInternal, err)
	}

	filter := domain.ListFilter{
		SortBy:    strings.TrimSpace(sortBy),
		SortOrder: strings.TrimSpace(sortOrder),
	}
	if !isAdmin {
		filter.UserID = &userID
	}

	list, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	if err := s.attachComments(ctx, list); err != nil {
		return nil, err
	}

	return models.FromDomainBookingList(list), nil
}

// Reject отклоняет бронирование. Отклонить можно заявку в ожидании или
// уже одобренную; отклоненная заявка окончательна и повторно не отклоняется.
func (s *Service) Reject(ctx context.Context, bookingID, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("Reject: booking=%d, admin=%d", bookingID, userID)

	// Отсутствие заявки выясняется до проверки прав: 404 не должен
	// маскироваться под 403
	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := s.requireAdmin(ctx, userID); err != nil {
		return nil, err
	}

	if !booking.CanBeRejected() {
		s.logger.Warn("Reject: booking id=%d has status %q", bookingID, booking.Status)
		return nil, fmt.Errorf("%w: current status is %q", ErrCannotReject, booking.Status)
	}

	wasApproved := booking.IsApproved()

	// Обновление гейтится текущим статусом: конкурентный перевод между
	// чтением и записью затронет ноль строк вместо повторного отклонения
	err = s.bookingRepo.UpdateStatusFrom(ctx, bookingID, domain.StatusRejected, domain.StatusPending, domain.StatusApproved)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Reject: booking id=%d changed concurrently", bookingID)
			return nil, fmt.Errorf("%w: booking changed concurrently", ErrCannotReject)
		}
		s.logger.Error("Reject: failed to update status for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusRejected
	s.logger.Info("Reject: successfully rejected booking id=%d", bookingID)

	comments, err := s.commentRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		s.logger.Error("Reject: failed to load comments for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to load comments: %v", ErrInternal, err)
	}
	booking.Comments = comments

	// Уведомляем только при отзыве уже одобренной заявки: у нее было
	// место в расписании. Сбой отправки не отменяет отклонение.
	if wasApproved {
		if err := s.notifier.BookingRejected(ctx, booking); err != nil {
			s.logger.Error("Reject: failed to send notification for booking id=%d: %v", bookingID, err)
		}
	}

	return models.FromDomainBooking(booking), nil
}

// Delete удаляет бронирование вместе с комментариями.
// Удаление безусловно и возможно из любого статуса.
func (s *Service) Delete(ctx context.Context, bookingID, userID int64) error {
	s.logger.Info("Delete: booking=%d, user=%d", bookingID, userID)

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if err := s.authorizeOwnerOrAdmin(ctx, booking, userID); err != nil {
		return err
	}

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: failed to delete booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: failed to delete booking: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", bookingID)
	return nil
}

// AddComment добавляет комментарий к бронированию
func (s *Service) AddComment(ctx context.Context, bookingID, userID int64, text string) (*models.CommentResponse, error) {
	s.logger.Info("AddComment: booking=%d, user=%d", bookingID, userID)

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: comment text is required", ErrInvalidInput)
	}

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeOwnerOrAdmin(ctx, booking, userID); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.Create(ctx, &domain.Comment{
		BookingID: bookingID,
		Text:      text,
	})
	if err != nil {
		s.logger.Error("AddComment: failed to create comment for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to create comment: %v", ErrInternal, err)
	}

	s.logger.Info("AddComment: created comment id=%d for booking id=%d", comment.ID, bookingID)

	return &models.CommentResponse{
		ID:        comment.ID,
		BookingID: comment.BookingID,
		Comment:   comment.Text,
	}, nil
}

// IsAdmin проверяет, входит ли пользователь в список администраторов
func (s *Service) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	isAdmin, err := s.adminRepo.IsAdmin(ctx, userID)
	if err != nil {
		s.logger.Error("IsAdmin: failed to check admin for user=%d: %v", userID, err)
		return false, fmt.Errorf("%w: failed to check admin: %v", ErrInternal, err)
	}
	return isAdmin, nil
}

func (s *Service) getBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("failed to get booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	return booking, nil
}

func (s *Service) requireAdmin(ctx context.Context, userID int64) error {
	isAdmin, err := s.adminRepo.IsAdmin(ctx, userID)
	if err != nil {
		s.logger.Error("failed to check admin for user=%d: %v", userID, err)
		return fmt.Errorf("%w: failed to check admin: %v", ErrInternal, err)
	}
	if !isAdmin {
		s.logger.Warn("user=%d is not an admin", userID)
		return ErrAccessDenied
	}
	return nil
}

func (s *Service) authorizeOwnerOrAdmin(ctx context.Context, b *domain.Booking, userID int64) error {
	if b.UserID == userID {
		return nil
	}

	isAdmin, err := s.adminRepo.IsAdmin(ctx, userID)
	if err != nil {
		s.logger.Error("failed to check admin for user=%d: %v", userID, err)
		return fmt.Errorf("%w: failed to check admin: %v", ErrInternal, err)
	}
	if !isAdmin {
		s.logger.Warn("access denied for user=%d to booking id=%d", userID, b.ID)
		return ErrAccessDenied
	}
	return nil
}

func (s *Service) attachComments(ctx context.Context, list []*domain.Booking) error {
	if len(list) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(list))
	for _, b := range list {
		ids = append(ids, b.ID)
	}

	grouped, err := s.commentRepo.GetByBookingIDs(ctx, ids)
	if err != nil {
		s.logger.Error("failed to load comments: %v", err)
		return fmt.Errorf("%w: failed to load comments: %v", ErrInternal, err)
	}

	for _, b := range list {
		b.Comments = grouped[b.ID]
	}
	return nil
}
