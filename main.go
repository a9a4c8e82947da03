package main

import (
	"github.com/techfolks/techfolks/config"
	"github.com/techfolks/techfolks/mockdata"
	"github.com/techfolks/techfolks/routes"
	"github.com/techfolks/techfolks/store"
	"github.com/techfolks/techfolks/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	forumStore := store.NewForumStore()
	var lastPostID, lastReplyID int
	if cfg.SeedDemoData {
		lastPostID, lastReplyID = mockdata.SeedForum(forumStore)
		posts, replies := forumStore.Counts()
		utils.Sugar.Infof("seeded demo forum content: %d posts, %d replies", posts, replies)
	}

	r := routes.SetupRouter(routes.Deps{
		Store:       forumStore,
		Users:       mockdata.Users(),
		LastPostID:  lastPostID,
		LastReplyID: lastReplyID,
	})

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
