package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/lotterybot/lotterybot/model"
	"github.com/lotterybot/lotterybot/service/draw"
)

const tenantKey = "adminUserID"

func (s *Server) requireTenant(c *gin.Context) {
	adminUserID, err := strconv.ParseInt(c.GetHeader(tenantHeader), 10, 64)
	if err != nil || adminUserID <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": "missing or invalid " + tenantHeader + " header",
		})
		return
	}
	c.Set(tenantKey, adminUserID)
	c.Next()
}

func tenantID(c *gin.Context) int64 {
	return c.GetInt64(tenantKey)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func (s *Server) abortServiceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, draw.ErrLotteryNotFound):
		status = http.StatusNotFound
	case errors.Is(err, draw.ErrAlreadyDrawing):
		status = http.StatusConflict
	case errors.Is(err, draw.ErrInvalidTransition),
		errors.Is(err, draw.ErrNoPrizesConfigured),
		errors.Is(err, draw.ErrNotAParticipant),
		errors.Is(err, draw.ErrTooManyWinners),
		errors.Is(err, draw.ErrDuplicateWinner),
		errors.Is(err, draw.ErrInvalidTimeRange):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

type createLotteryRequest struct {
	Title           string    `json:"title" binding:"required"`
	Description     string    `json:"description"`
	PrizeImage      string    `json:"prize_image"`
	MaxParticipants int64     `json:"max_participants"`
	StartTime       time.Time `json:"start_time" binding:"required"`
	EndTime         time.Time `json:"end_time" binding:"required"`
}

func (s *Server) createLottery(c *gin.Context) {
	var req createLotteryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lotteryID, err := s.service.CreateLottery(c.Request.Context(), model.Lottery{
		AdminUserID:     tenantID(c),
		Title:           req.Title,
		Description:     req.Description,
		PrizeImage:      req.PrizeImage,
		MaxParticipants: req.MaxParticipants,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
	})
	if err != nil {
		s.abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": lotteryID})
}

type lotterySummaryResponse struct {
	ID               int64           `json:"id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	PrizeImage       string          `json:"prize_image,omitempty"`
	MaxParticipants  int64           `json:"max_participants"`
	StartTime        time.Time       `json:"start_time"`
	EndTime          time.Time       `json:"end_time"`
	Status           string          `json:"status"`
	ManuallyDrawn    bool            `json:"manually_drawn"`
	ParticipantCount int64           `json:"participant_count"`
	Prizes           []prizeResponse `json:"prizes"`
}

type prizeResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Value       decimal.Decimal `json:"value,omitempty"`
	WinnerCount int64           `json:"winner_count"`
	Level       int64           `json:"level"`
}

func toSummaryResponse(summary draw.LotterySummary) lotterySummaryResponse {
	lottery := summary.Lottery

	prizes := make([]prizeResponse, 0, len(summary.Prizes))
	for _, prize := range summary.Prizes {
		resp := prizeResponse{
			ID:          prize.ID,
			Name:        prize.Name,
			Description: prize.Description,
			WinnerCount: prize.WinnerCount,
			Level:       prize.Level,
		}
		if prize.Value.Valid {
			resp.Value = prize.Value.Decimal
		}
		prizes = append(prizes, resp)
	}

	return lotterySummaryResponse{
		ID:               lottery.ID,
		Title:            lottery.Title,
		Description:      lottery.Description,
		PrizeImage:       lottery.PrizeImage,
		MaxParticipants:  lottery.MaxParticipants,
		StartTime:        lottery.StartTime,
		EndTime:          lottery.EndTime,
		Status:           lottery.Status.String(),
		ManuallyDrawn:    lottery.ManuallyDrawn,
		ParticipantCount: summary.ParticipantCount,
		Prizes:           prizes,
	}
}

func (s *Server) listLotteries(c *gin.Context) {
	summaries, err := s.service.ListActiveDetails(c.Request.Context(), tenantID(c), time.Now())
	if err != nil {
		s.abortServiceError(c, err)
		return
	}

	result := make([]lotterySummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		result = append(result, toSummaryResponse(summary))
	}
	c.JSON(http.StatusOK, gin.H{"lotteries": result})
}

type winnerResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	PrizeID   int64     `json:"prize_id"`
	PrizeName string    `json:"prize_name"`
	Claimed   bool      `json:"claimed"`
	WonAt     time.Time `json:"won_at"`
}

func toWinnerResponses(winners []model.Winner) []winnerResponse {
	result := make([]winnerResponse, 0, len(winners))
	for _, winner := range winners {
		result = append(result, winnerResponse{
			ID:        winner.ID,
			UserID:    winner.UserID,
			PrizeID:   winner.PrizeID,
			PrizeName: winner.PrizeName,
			Claimed:   winner.Claimed,
			WonAt:     winner.WonAt,
		})
	}
	return result
}

func (s *Server) getLottery(c *gin.Context) {
	lotteryID, ok := pathID(c)
	if !ok {
		return
	}

	summary, found, err := s.service.GetLotteryDetails(c.Request.Context(), tenantID(c), lotteryID)
	if err != nil {
		s.abortServiceError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "lottery not found"})
		return
	}

	winners, err := s.service.ListWinners(c.Request.Context(), tenantID(c), lotteryID)
	if err != nil {
		s.abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"lottery": toSummaryResponse(summary),
		"winners": toWinnerResponses(winners),
	})
}

type addPrizeRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
	WinnerCount int64           `json:"winner_count" binding:"required,min=1"`
	Level       int64           `json:"level" binding:"required,min=1"`
}

func (s *Server) addPrize(c *gin.Context) {
	lotteryID, ok := pathID(c)
	if !ok {
		return
	}

	var req addPrizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prize := model.Prize{
		LotteryID:   lotteryID,
		Name:        req.Name,
		Description: req.Description,
		WinnerCount: req.WinnerCount,
		Level:       req.Level,
	}
	if !req.Value.IsZero() {
		prize.Value = decimal.NullDecimal{Valid: true, Decimal: req.Value}
	}

	prizeID, err := s.service.AddPrize(c.Request.Context(), tenantID(c), prize)
	if err != nil {
		s.abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": prizeID})
}

func drawResultBody(result draw.Result) gin.H {
	return gin.H{
		"outcome": result.Outcome.String(),
		"winners": toWinnerResponses(result.Winners),
	}
}

func (s *Server) drawLottery(c *gin.Context) {
	lotteryID, ok := pathID(c)
	if !ok {
		return
	}

	result, err := s.service.Draw(c.Request.Context(), tenantID(c), lotteryID)
	if err != nil {
		s.abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, drawResultBody(result))
}

type manualDrawRequest struct {
	UserIDs []int64 `json:"user_ids" binding:"required,min=1"`
}

func (s *Server) manualDraw(c *gin.Context) {
	lotteryID, ok := pathID(c)
	if !ok {
		return
	}

	var req manualDrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.service.ManualDraw(c.Request.Context(), tenantID(c), lotteryID, req.UserIDs)
	if err != nil {
		s.abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, drawResultBody(result))
}

func (s *Server) cancelLottery(c *gin.Context) {
	lotteryID, ok := pathID(c)
	if !ok {
		return
	}

	err := s.service.Cancel(c.Request.Context(), tenantID(c), lotteryID)
	if err != nil {
		s.abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": model.LotteryStatusCancelled.String()})
}

type claimRequest struct {
	Claimed *bool `json:"claimed" binding:"required"`
}

func (s *Server) claimWinner(c *gin.Context) {
	winnerID, ok := pathID(c)
	if !ok {
		return
	}

	var req claimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := s.service.SetWinnerClaimed(c.Request.Context(), tenantID(c), winnerID, *req.Claimed)
	if err != nil {
		s.abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"claimed": *req.Claimed})
}

func (s *Server) statistics(c *gin.Context) {
	stats, err := s.service.GetStats(c.Request.Context(), tenantID(c))
	if err != nil {
		s.abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total_lotteries":    stats.TotalLotteries,
		"active_lotteries":   stats.ActiveLotteries,
		"finished_lotteries": stats.FinishedLotteries,
		"total_participants": stats.TotalParticipants,
		"total_winners":      stats.TotalWinners,
	})
}

func (s *Server) getBotConfig(c *gin.Context) {
	ctx := s.provider.Readonly(c.Request.Context())

	nullConfig, err := s.configs.Get(ctx, tenantID(c))
	if err != nil {
		s.abortServiceError(c, err)
		return
	}
	if !nullConfig.Valid {
		c.JSON(http.StatusNotFound, gin.H{"error": "bot config not found"})
		return
	}

	conf := nullConfig.Config
	c.JSON(http.StatusOK, gin.H{
		"bot_username": conf.BotUsername,
		"is_active":    conf.IsActive,
		"has_token":    conf.BotToken != "",
	})
}

type botConfigRequest struct {
	BotToken    string `json:"bot_token" binding:"required"`
	BotUsername string `json:"bot_username"`
	IsActive    *bool  `json:"is_active" binding:"required"`
}

func (s *Server) putBotConfig(c *gin.Context) {
	var req botConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := s.provider.Transact(c.Request.Context(), func(ctx context.Context) error {
		return s.configs.Upsert(ctx, model.BotConfig{
			AdminUserID: tenantID(c),
			BotToken:    req.BotToken,
			BotUsername: req.BotUsername,
			IsActive:    *req.IsActive,
		})
	})
	if err != nil {
		s.abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_active": *req.IsActive})
}
