package bot

import (
	"context"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"go.uber.org/zap"

	"github.com/lotterybot/lotterybot/model"
	"github.com/lotterybot/lotterybot/repository"
	"github.com/lotterybot/lotterybot/service/draw"
)

//go:generate moq -rm -out bot_mocks_test.go . API Service

const (
	callbackMainMenu    = "main_menu"
	callbackHelp        = "help"
	callbackJoinLottery = "join_lottery"
	callbackMyLotteries = "my_lotteries"
	callbackPageInfo    = "page_info"

	callbackPrefixPage        = "lottery_page_"
	callbackPrefixParticipate = "participate_"
	callbackPrefixDraw        = "draw_"
)

// API is the part of the Telegram bot API the worker talks to.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	AnswerCallbackQuery(config tgbotapi.CallbackConfig) (tgbotapi.APIResponse, error)
}

// Service is the part of the draw service the worker uses, always scoped
// to the worker's own tenant.
type Service interface {
	RegisterUser(ctx context.Context, user model.TelegramUser) error
	ListActiveDetails(ctx context.Context, adminUserID int64, now time.Time) ([]draw.LotterySummary, error)
	Participate(ctx context.Context, adminUserID int64, lotteryID int64, user model.TelegramUser) error
	Draw(ctx context.Context, adminUserID int64, lotteryID int64) (draw.Result, error)
	MyParticipations(ctx context.Context, adminUserID int64, telegramID int64) ([]repository.ParticipationDetail, error)
	MyWins(ctx context.Context, adminUserID int64, telegramID int64) ([]repository.WinnerDetail, error)
	ResolveUsers(ctx context.Context, ids []int64) ([]model.TelegramUser, error)
}

// Worker serves the Telegram updates of one tenant's bot.
type Worker struct {
	adminUserID int64
	api         API
	service     Service
	listings    *listingCache
	pageSize    int
	logger      *zap.Logger
}

// NewWorker ...
func NewWorker(
	adminUserID int64,
	api API,
	service Service,
	listings *listingCache,
	pageSize int,
	logger *zap.Logger,
) *Worker {
	return &Worker{
		adminUserID: adminUserID,
		api:         api,
		service:     service,
		listings:    listings,
		pageSize:    pageSize,
		logger:      logger,
	}
}

// NewWorkerFromConfig ...
func NewWorkerFromConfig(
	adminUserID int64,
	api API,
	service Service,
	cacheSize int,
	cacheTTL time.Duration,
	pageSize int,
	logger *zap.Logger,
) *Worker {
	return NewWorker(adminUserID, api, service,
		newListingCache(cacheSize, cacheTTL, logger), pageSize, logger)
}

// Run consumes the update channel until it closes or ctx is cancelled.
func (w *Worker) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			w.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate ...
func (w *Worker) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil:
		w.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		w.handleCallback(ctx, update.CallbackQuery)
	}
}

func (w *Worker) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || !strings.HasPrefix(msg.Text, "/start") {
		return
	}

	user := userFromTelegram(msg.From)
	if err := w.service.RegisterUser(ctx, user); err != nil {
		w.logger.Error("registering user failed",
			zap.Int64("telegram_id", user.TelegramID), zap.Error(err))
	}

	answer := tgbotapi.NewMessage(msg.Chat.ID, menuText(user))
	answer.ReplyMarkup = menuKeyboard()
	w.send(answer)
}

func (w *Worker) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	_, err := w.api.AnswerCallbackQuery(tgbotapi.NewCallback(query.ID, ""))
	if err != nil {
		w.logger.Warn("answering callback failed", zap.Error(err))
	}

	data := query.Data
	switch {
	case data == callbackMainMenu:
		w.showMainMenu(query)

	case data == callbackHelp:
		w.showHelp(query)

	case data == callbackJoinLottery:
		w.showActiveLotteries(ctx, query, 1)

	case strings.HasPrefix(data, callbackPrefixPage):
		pageNum, err := strconv.Atoi(strings.TrimPrefix(data, callbackPrefixPage))
		if err != nil {
			return
		}
		w.showActiveLotteries(ctx, query, pageNum)

	case strings.HasPrefix(data, callbackPrefixParticipate):
		lotteryID, err := strconv.ParseInt(strings.TrimPrefix(data, callbackPrefixParticipate), 10, 64)
		if err != nil {
			return
		}
		w.participate(ctx, query, lotteryID)

	case strings.HasPrefix(data, callbackPrefixDraw):
		lotteryID, err := strconv.ParseInt(strings.TrimPrefix(data, callbackPrefixDraw), 10, 64)
		if err != nil {
			return
		}
		w.drawLottery(ctx, query, lotteryID)

	case data == callbackMyLotteries:
		w.showMyLotteries(ctx, query)

	case data == callbackPageInfo:
		// the page indicator does nothing

	default:
		w.logger.Warn("unhandled callback", zap.String("data", data))
	}
}

func (w *Worker) showMainMenu(query *tgbotapi.CallbackQuery) {
	user := userFromTelegram(query.From)
	w.edit(query, menuText(user), menuKeyboard())
}

func (w *Worker) showHelp(query *tgbotapi.CallbackQuery) {
	w.edit(query, helpText(), backKeyboard())
}

func (w *Worker) showActiveLotteries(ctx context.Context, query *tgbotapi.CallbackQuery, pageNum int) {
	summaries, ok := w.listings.Get()
	if !ok {
		var err error
		summaries, err = w.service.ListActiveDetails(ctx, w.adminUserID, time.Now())
		if err != nil {
			w.logger.Error("listing lotteries failed", zap.Error(err))
			w.edit(query, "❌ Could not load lotteries, please try again later", backKeyboard())
			return
		}
		w.listings.Set(summaries)
	}

	if len(summaries) == 0 {
		w.edit(query, "😢 No lotteries are running right now", backKeyboard())
		return
	}

	p := paginate(len(summaries), pageNum, w.pageSize)
	text, keyboard := renderListing(summaries, p)
	w.edit(query, text, keyboard)
}

func (w *Worker) participate(ctx context.Context, query *tgbotapi.CallbackQuery, lotteryID int64) {
	user := userFromTelegram(query.From)

	err := w.service.Participate(ctx, w.adminUserID, lotteryID, user)
	if err != nil {
		w.edit(query, "❌ "+participateFailure(err), joinKeyboard())
		return
	}

	w.listings.Invalidate()
	w.edit(query,
		"🎉 You are in!\n\nYou will be notified as soon as the winners are drawn.",
		joinKeyboard())
}

func (w *Worker) drawLottery(ctx context.Context, query *tgbotapi.CallbackQuery, lotteryID int64) {
	// only the tenant's admin may trigger a draw from chat
	if int64(query.From.ID) != w.adminUserID {
		w.edit(query, "🔒 Only the lottery administrator can draw the winners.", backKeyboard())
		return
	}

	result, err := w.service.Draw(ctx, w.adminUserID, lotteryID)
	if err != nil {
		w.edit(query, "❌ "+drawFailure(err), backKeyboard())
		return
	}
	w.listings.Invalidate()

	if result.Outcome == draw.OutcomeNoParticipants {
		w.edit(query, "🏁 The lottery has ended with no participants.", backKeyboard())
		return
	}

	names, err := w.resolveNames(ctx, result.Winners)
	if err != nil {
		w.logger.Error("resolving winner names failed", zap.Error(err))
	}
	w.edit(query, renderDrawResult(result.Winners, names), backKeyboard())
}

func (w *Worker) showMyLotteries(ctx context.Context, query *tgbotapi.CallbackQuery) {
	telegramID := int64(query.From.ID)

	participations, err := w.service.MyParticipations(ctx, w.adminUserID, telegramID)
	if err != nil {
		w.logger.Error("listing participations failed", zap.Error(err))
		w.edit(query, "❌ Could not load your lotteries, please try again later", backKeyboard())
		return
	}
	wins, err := w.service.MyWins(ctx, w.adminUserID, telegramID)
	if err != nil {
		w.logger.Error("listing wins failed", zap.Error(err))
		w.edit(query, "❌ Could not load your lotteries, please try again later", backKeyboard())
		return
	}

	w.edit(query, renderMyLotteries(participations, wins), backKeyboard())
}

func (w *Worker) resolveNames(ctx context.Context, winners []model.Winner) (map[int64]string, error) {
	ids := make([]int64, 0, len(winners))
	for _, winner := range winners {
		ids = append(ids, winner.UserID)
	}
	users, err := w.service.ResolveUsers(ctx, ids)
	if err != nil {
		return nil, err
	}

	names := map[int64]string{}
	for _, user := range users {
		names[user.ID] = user.DisplayName()
	}
	return names, nil
}

func (w *Worker) send(c tgbotapi.Chattable) {
	if _, err := w.api.Send(c); err != nil {
		w.logger.Error("sending message failed", zap.Error(err))
	}
}

func (w *Worker) edit(query *tgbotapi.CallbackQuery, text string, keyboard tgbotapi.InlineKeyboardMarkup) {
	edited := tgbotapi.NewEditMessageText(
		query.Message.Chat.ID, query.Message.MessageID, text)
	edited.ReplyMarkup = &keyboard
	w.send(edited)
}

func userFromTelegram(from *tgbotapi.User) model.TelegramUser {
	return model.TelegramUser{
		TelegramID: int64(from.ID),
		Username:   from.UserName,
		FirstName:  from.FirstName,
		LastName:   from.LastName,
	}
}
