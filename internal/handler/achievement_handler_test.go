package handler_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"edutech/internal/domain"
	"edutech/internal/dto"
	"edutech/internal/handler"
	"edutech/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestAchievementHandler_GetAchievements(t *testing.T) {
	mockAchievements := &MockAchievementService{
		ListAchievementsFunc: func(ctx context.Context) ([]dto.AchievementResponse, error) {
			return []dto.AchievementResponse{
				{ID: 1, Title: "First Steps", Icon: "award"},
				{ID: 2, Title: "Week Warrior", Icon: "flame"},
			}, nil
		},
	}
	h := handler.NewAchievementHandler(mockAchievements, validation.NewValidator())
	app := newTestApp("GET", "/achievements", 0, h.GetAchievements)

	status, body := getBody(t, app, "/achievements")
	assert.Equal(t, fiber.StatusOK, status)

	var achievements []dto.AchievementResponse
	assert.NoError(t, json.Unmarshal(body, &achievements))
	assert.Len(t, achievements, 2)
	assert.Equal(t, "First Steps", achievements[0].Title)
}

func TestAchievementHandler_Award(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		awardedAt := time.Now()
		mockAchievements := &MockAchievementService{
			AwardFunc: func(ctx context.Context, userID, achievementID int64) (*dto.UserAchievementResponse, error) {
				assert.Equal(t, int64(42), userID)
				assert.Equal(t, int64(2), achievementID)
				return &dto.UserAchievementResponse{
					ID:          1,
					UserID:      42,
					AwardedAt:   awardedAt,
					Achievement: dto.AchievementResponse{ID: 2, Title: "Week Warrior"},
				}, nil
			},
		}
		h := handler.NewAchievementHandler(mockAchievements, validation.NewValidator())
		app := newTestApp("POST", "/user/achievements", 42, h.Award)

		rec := postJSON(t, app, "/user/achievements", dto.AwardRequest{AchievementID: 2})
		assert.Equal(t, fiber.StatusCreated, rec.Code)

		var resp dto.UserAchievementResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Week Warrior", resp.Achievement.Title)
	})

	t.Run("Unknown Achievement", func(t *testing.T) {
		mockAchievements := &MockAchievementService{
			AwardFunc: func(ctx context.Context, userID, achievementID int64) (*dto.UserAchievementResponse, error) {
				return nil, domain.NewNotFoundError("achievement not found: 99")
			},
		}
		h := handler.NewAchievementHandler(mockAchievements, validation.NewValidator())
		app := newTestApp("POST", "/user/achievements", 42, h.Award)

		rec := postJSON(t, app, "/user/achievements", dto.AwardRequest{AchievementID: 99})
		assert.Equal(t, fiber.StatusNotFound, rec.Code)
	})

	t.Run("Missing Achievement ID", func(t *testing.T) {
		mockAchievements := &MockAchievementService{
			AwardFunc: func(ctx context.Context, userID, achievementID int64) (*dto.UserAchievementResponse, error) {
				t.Fatal("Award should not be called when validation fails")
				return nil, nil
			},
		}
		h := handler.NewAchievementHandler(mockAchievements, validation.NewValidator())
		app := newTestApp("POST", "/user/achievements", 42, h.Award)

		rec := postJSON(t, app, "/user/achievements", dto.AwardRequest{})
		assert.Equal(t, fiber.StatusBadRequest, rec.Code)
	})
}

func TestAchievementHandler_GetUserAchievements(t *testing.T) {
	mockAchievements := &MockAchievementService{
		ListUserAchievementsFunc: func(ctx context.Context, userID int64) ([]dto.UserAchievementResponse, error) {
			assert.Equal(t, int64(42), userID)
			return []dto.UserAchievementResponse{
				{ID: 1, UserID: 42, Achievement: dto.AchievementResponse{ID: 2}},
				{ID: 2, UserID: 42, Achievement: dto.AchievementResponse{ID: 2}},
			}, nil
		},
	}
	h := handler.NewAchievementHandler(mockAchievements, validation.NewValidator())
	app := newTestApp("GET", "/user/achievements", 42, h.GetUserAchievements)

	status, body := getBody(t, app, "/user/achievements")
	assert.Equal(t, fiber.StatusOK, status)

	var awards []dto.UserAchievementResponse
	assert.NoError(t, json.Unmarshal(body, &awards))
	assert.Len(t, awards, 2)
}
