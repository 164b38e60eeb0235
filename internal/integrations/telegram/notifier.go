package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/avlasov/venue-booking-service/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Notifier доставляет уведомления о бронированиях через Telegram.
// Доставка best-effort: вызывающая сторона логирует ошибку и продолжает,
// неудачная отправка никогда не откатывает изменение бронирования.
type Notifier struct {
	bot                 *tgbotapi.BotAPI
	notificationsChatID int64
	log                 Logger
}

// NewNotifier создает нотификатор с переданным токеном бота
func NewNotifier(botToken string, notificationsChatID int64, log Logger) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("telegram: failed to init bot: %w", err)
	}

	log.Info("Telegram notifier initialized as @%s", bot.Self.UserName)

	return &Notifier{
		bot:                 bot,
		notificationsChatID: notificationsChatID,
		log:                 log,
	}, nil
}

// BookingCreated рассылает уведомление о новой заявке всем администраторам
func (n *Notifier) BookingCreated(ctx context.Context, b *domain.Booking, adminIDs []int64) error {
	text := "🔔 <b>Новая заявка на бронирование!</b>\n\n<b>Детали:</b>\n" + bookingCard(b)

	var firstErr error
	for _, adminID := range adminIDs {
		if err := n.send(adminID, text); err != nil {
			n.log.Warn("BookingCreated: failed to notify admin %d: %v", adminID, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// BookingApproved отправляет уведомление о подтверждении в канал уведомлений
func (n *Notifier) BookingApproved(ctx context.Context, b *domain.Booking) error {
	text := "✅ <b>Бронирование подтверждено</b>\n" + bookingCard(b)
	return n.send(n.notificationsChatID, text)
}

// BookingRejected отправляет уведомление об отклонении в канал уведомлений.
// Вызывается только когда отклонение снимает ранее выданное подтверждение.
func (n *Notifier) BookingRejected(ctx context.Context, b *domain.Booking) error {
	text := "❌ <b>Бронирование отклонено</b>\n" + bookingCard(b)
	return n.send(n.notificationsChatID, text)
}

// SendDocument отправляет файл пользователю в Telegram
func (n *Notifier) SendDocument(ctx context.Context, userID int64, filename string, data []byte, caption string) error {
	doc := tgbotapi.NewDocument(userID, tgbotapi.FileBytes{
		Name:  filename,
		Bytes: data,
	})
	doc.Caption = caption

	if _, err := n.bot.Send(doc); err != nil {
		return fmt.Errorf("%w: document to %d: %v", ErrSendFailed, userID, err)
	}
	return nil
}

func (n *Notifier) send(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML

	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("%w: chat %d: %v", ErrSendFailed, chatID, err)
	}
	return nil
}

// bookingCard формирует карточку бронирования для сообщения
func bookingCard(b *domain.Booking) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n<b>Номер:</b> %d\n", b.ID)
	fmt.Fprintf(&sb, "<b>Даты:</b> %s — %s\n", b.StartDate.Format("02.01.2006"), b.EndDate.Format("02.01.2006"))
	fmt.Fprintf(&sb, "<b>Название:</b> %s\n", orDash(b.Name))
	fmt.Fprintf(&sb, "<b>Тема:</b> %s\n", b.Theme)
	fmt.Fprintf(&sb, "<b>Описание:</b> %s\n", orDash(b.Description))
	fmt.Fprintf(&sb, "<b>Статус:</b> %s\n", b.Status)
	fmt.Fprintf(&sb, "<b>Количество участников с проживанием:</b> %d\n", b.PeopleCount)
	fmt.Fprintf(&sb, "<b>Количество участников и зрителей всего:</b> %s\n", orDashInt(b.PeopleCountOverall))
	fmt.Fprintf(&sb, "<b>Целевая аудитория:</b> %s\n", orDash(b.TargetAudience))
	fmt.Fprintf(&sb, "<b>Тип регистрации:</b> %s\n", orDash(b.Registration))
	fmt.Fprintf(&sb, "<b>Логистика участников:</b> %s\n", orDash(b.Logistics))
	fmt.Fprintf(&sb, "<b>Тип программы:</b> %s\n", orDash(b.ProgramType))
	fmt.Fprintf(&sb, "<b>Место:</b> %s\n", orDash(b.Place))
	fmt.Fprintf(&sb, "<b>Размещение участников:</b> %s\n", orDash(b.ParticipantsAccommodation))
	fmt.Fprintf(&sb, "<b>Количество экспертов:</b> %s\n", orDashInt(b.ExpertsCount))
	fmt.Fprintf(&sb, "<b>Куратор:</b> %s\n", orDash(b.CuratorName))
	fmt.Fprintf(&sb, "<b>Должность куратора:</b> %s\n", orDash(b.CuratorPosition))
	fmt.Fprintf(&sb, "<b>Контакты куратора:</b> %s\n", orDash(b.CuratorContact))
	fmt.Fprintf(&sb, "<b>Доп. информация:</b> %s", orDash(b.OtherInfo))

	return sb.String()
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func orDashInt(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

// NoopNotifier заглушка на случай выключенного Telegram
type NoopNotifier struct{}

func (NoopNotifier) BookingCreated(ctx context.Context, b *domain.Booking, adminIDs []int64) error {
	return nil
}

func (NoopNotifier) BookingApproved(ctx context.Context, b *domain.Booking) error {
	return nil
}

func (NoopNotifier) BookingRejected(ctx context.Context, b *domain.Booking) error {
	return nil
}

func (NoopNotifier) SendDocument(ctx context.Context, userID int64, filename string, data []byte, caption string) error {
	return nil
}
