package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/techfolks/techfolks/models"
	"github.com/techfolks/techfolks/store"
	"github.com/techfolks/techfolks/utils"
)

// ForumController exposes the forum store over HTTP. The store expects
// fully formed posts and replies with caller-assigned ids, so the
// controller owns the id sequences and the input sanitization.
type ForumController struct {
	store       *store.ForumStore
	nextPostID  atomic.Int64
	nextReplyID atomic.Int64
}

// NewForumController creates a ForumController. lastPostID and
// lastReplyID continue the id sequences past any seeded content.
func NewForumController(s *store.ForumStore, lastPostID, lastReplyID int) *ForumController {
	f := &ForumController{store: s}
	f.nextPostID.Store(int64(lastPostID))
	f.nextReplyID.Store(int64(lastReplyID))
	return f
}

// ListGroupPosts returns the posts of a group, pinned first, newest first.
func (f *ForumController) ListGroupPosts(ctx *gin.Context) {
	groupID, ok := paramInt(ctx, "groupId")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40030, "invalid group id")
		return
	}

	posts := f.store.PostsByGroup(groupID)
	utils.Success(ctx, gin.H{"items": posts, "total": len(posts)})
}

// CreatePost allows authenticated users to open a new discussion in a group.
func (f *ForumController) CreatePost(ctx *gin.Context) {
	groupID, ok := paramInt(ctx, "groupId")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40030, "invalid group id")
		return
	}

	var req struct {
		Title    string   `json:"title" binding:"required,min=1"`
		Content  string   `json:"content" binding:"required"`
		Tags     []string `json:"tags"`
		IsPinned bool     `json:"is_pinned"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40031, "invalid request payload")
		return
	}

	title := utils.SanitizeStrict(strings.TrimSpace(req.Title))
	if title == "" {
		utils.Error(ctx, http.StatusBadRequest, 40032, "title cannot be empty")
		return
	}

	userID, ok := getUserID(ctx)
	username, _ := getUsername(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	now := time.Now()
	post := models.Post{
		ID:         int(f.nextPostID.Add(1)),
		GroupID:    groupID,
		Title:      title,
		Content:    utils.Sanitize(req.Content),
		AuthorID:   userID,
		AuthorName: username,
		CreatedAt:  now,
		UpdatedAt:  now,
		IsPinned:   req.IsPinned,
		Tags:       sanitizeTags(req.Tags),
	}

	if !f.store.AddPost(post) {
		utils.Error(ctx, http.StatusInternalServerError, 50030, "failed to create post")
		return
	}

	utils.Success(ctx, gin.H{"post": post})
}

// GetPost returns a single post and counts the fetch as one view.
func (f *ForumController) GetPost(ctx *gin.Context) {
	id, ok := paramInt(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40033, "invalid post id")
		return
	}

	if _, found := f.store.Post(id); !found {
		utils.Error(ctx, http.StatusNotFound, 40430, "post not found")
		return
	}

	f.store.IncrementViews(id)
	post, _ := f.store.Post(id)
	utils.Success(ctx, gin.H{"post": post})
}

// UpdatePost applies a partial update to a post owned by the caller.
func (f *ForumController) UpdatePost(ctx *gin.Context) {
	id, ok := paramInt(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40033, "invalid post id")
		return
	}

	var req struct {
		Title    *string   `json:"title"`
		Content  *string   `json:"content"`
		IsPinned *bool     `json:"is_pinned"`
		IsLocked *bool     `json:"is_locked"`
		Tags     *[]string `json:"tags"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40031, "invalid request payload")
		return
	}

	post, found := f.store.Post(id)
	if !found {
		utils.Error(ctx, http.StatusNotFound, 40430, "post not found")
		return
	}

	userID, _ := getUserID(ctx)
	if post.AuthorID != userID {
		utils.Error(ctx, http.StatusForbidden, 40330, "only the author can edit this post")
		return
	}

	updates := store.PostUpdate{
		IsPinned: req.IsPinned,
		IsLocked: req.IsLocked,
	}
	if req.Title != nil {
		title := utils.SanitizeStrict(strings.TrimSpace(*req.Title))
		if title == "" {
			utils.Error(ctx, http.StatusBadRequest, 40032, "title cannot be empty")
			return
		}
		updates.Title = &title
	}
	if req.Content != nil {
		content := utils.Sanitize(*req.Content)
		updates.Content = &content
	}
	if req.Tags != nil {
		tags := sanitizeTags(*req.Tags)
		updates.Tags = &tags
	}

	f.store.UpdatePost(id, updates)
	post, _ = f.store.Post(id)
	utils.Success(ctx, gin.H{"post": post})
}

// DeletePost removes a post owned by the caller together with its replies.
func (f *ForumController) DeletePost(ctx *gin.Context) {
	id, ok := paramInt(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40033, "invalid post id")
		return
	}

	post, found := f.store.Post(id)
	if !found {
		utils.Error(ctx, http.StatusNotFound, 40430, "post not found")
		return
	}

	userID, _ := getUserID(ctx)
	if post.AuthorID != userID {
		utils.Error(ctx, http.StatusForbidden, 40331, "only the author can delete this post")
		return
	}

	f.store.DeletePost(id)
	utils.Success(ctx, gin.H{"message": "post deleted"})
}

// ListReplies returns the ordered reply sequence of a post.
func (f *ForumController) ListReplies(ctx *gin.Context) {
	id, ok := paramInt(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40033, "invalid post id")
		return
	}

	replies := f.store.Replies(id)
	utils.Success(ctx, gin.H{"items": replies, "total": len(replies)})
}

// CreateReply appends a reply to an open post. Locked posts refuse new
// replies here; the store itself does not enforce locking.
func (f *ForumController) CreateReply(ctx *gin.Context) {
	id, ok := paramInt(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40033, "invalid post id")
		return
	}

	var req struct {
		Content    string `json:"content" binding:"required"`
		IsAccepted *bool  `json:"is_accepted"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40031, "invalid request payload")
		return
	}

	post, found := f.store.Post(id)
	if !found {
		utils.Error(ctx, http.StatusNotFound, 40430, "post not found")
		return
	}
	if post.IsLocked {
		utils.Error(ctx, http.StatusForbidden, 40332, "post is locked")
		return
	}

	userID, ok := getUserID(ctx)
	username, _ := getUsername(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	now := time.Now()
	reply := models.Reply{
		ID:         int(f.nextReplyID.Add(1)),
		PostID:     id,
		Content:    utils.Sanitize(req.Content),
		AuthorID:   userID,
		AuthorName: username,
		CreatedAt:  now,
		UpdatedAt:  now,
		IsAccepted: req.IsAccepted,
	}

	if !f.store.AddReply(id, reply) {
		utils.Error(ctx, http.StatusNotFound, 40430, "post not found")
		return
	}

	utils.Success(ctx, gin.H{"reply": reply})
}

// DeleteReply removes a reply owned by the caller.
func (f *ForumController) DeleteReply(ctx *gin.Context) {
	postID, ok := paramInt(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40033, "invalid post id")
		return
	}
	replyID, ok := paramInt(ctx, "replyId")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40034, "invalid reply id")
		return
	}

	var target *models.Reply
	for _, r := range f.store.Replies(postID) {
		if r.ID == replyID {
			reply := r
			target = &reply
			break
		}
	}
	if target == nil {
		utils.Error(ctx, http.StatusNotFound, 40431, "reply not found")
		return
	}

	userID, _ := getUserID(ctx)
	if target.AuthorID != userID {
		utils.Error(ctx, http.StatusForbidden, 40333, "only the author can delete this reply")
		return
	}

	f.store.DeleteReply(postID, replyID)
	utils.Success(ctx, gin.H{"message": "reply deleted"})
}

func paramInt(ctx *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(ctx.Param(name))
	if err != nil {
		return 0, false
	}
	return v, true
}

func sanitizeTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = utils.SanitizeStrict(strings.TrimSpace(t)); t != "" {
			out = append(out, t)
		}
	}
	return out
}
