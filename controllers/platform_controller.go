package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techfolks/techfolks/mockdata"
	"github.com/techfolks/techfolks/models"
	"github.com/techfolks/techfolks/store"
	"github.com/techfolks/techfolks/utils"
)

// PlatformController serves the static judge-facing endpoints: problem
// catalogue, contest schedule, and the per-user dashboard. These are
// canned response generators; only the forum counters are live.
type PlatformController struct {
	store *store.ForumStore
	users []models.User
}

// NewPlatformController creates a PlatformController.
func NewPlatformController(s *store.ForumStore, users []models.User) *PlatformController {
	return &PlatformController{store: s, users: users}
}

// ListProblems returns the problem catalogue.
func (p *PlatformController) ListProblems(ctx *gin.Context) {
	problems := mockdata.Problems()
	utils.Success(ctx, gin.H{"items": problems, "total": len(problems)})
}

// ListContests returns the contest schedule.
func (p *PlatformController) ListContests(ctx *gin.Context) {
	contests := mockdata.Contests()
	utils.Success(ctx, gin.H{"items": contests, "total": len(contests)})
}

// Dashboard returns the authenticated user's landing page payload.
func (p *PlatformController) Dashboard(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var user *models.User
	for i := range p.users {
		if p.users[i].ID == userID {
			user = &p.users[i]
			break
		}
	}
	if user == nil {
		utils.Error(ctx, http.StatusNotFound, 40410, "user not found")
		return
	}

	postCount, replyCount := p.store.Counts()
	utils.Success(ctx, gin.H{
		"user": user,
		"stats": gin.H{
			"solved_count":      user.SolvedCount,
			"rating":            user.Rating,
			"max_rating":        user.MaxRating,
			"contests_attended": len(mockdata.Contests()) - 1,
			"forum_posts":       postCount,
			"forum_replies":     replyCount,
		},
		"upcoming_contests": upcoming(mockdata.Contests()),
	})
}

// GetStats returns aggregate statistics for the platform.
func (p *PlatformController) GetStats(ctx *gin.Context) {
	postCount, replyCount := p.store.Counts()
	utils.Success(ctx, gin.H{
		"user_count":    len(p.users),
		"problem_count": len(mockdata.Problems()),
		"contest_count": len(mockdata.Contests()),
		"post_count":    postCount,
		"reply_count":   replyCount,
	})
}

func upcoming(contests []models.Contest) []models.Contest {
	out := make([]models.Contest, 0)
	for _, c := range contests {
		if c.Status == "upcoming" || c.Status == "running" {
			out = append(out, c)
		}
	}
	return out
}
