package main

import (
	"context"
	"log"

	"bulletin-board-be/internal/config"
	"bulletin-board-be/internal/dto"
	"bulletin-board-be/internal/model"
	"bulletin-board-be/internal/pkg/logger"
	"bulletin-board-be/internal/repository/unitofwork"
	"bulletin-board-be/internal/service"
	"bulletin-board-be/pkg/database"
)

type seedNote struct {
	text  string
	x, y  float64
	color string
	tags  []string
}

var welcomeNotes = []seedNote{
	{text: "Drag notes anywhere on the board", x: 80, y: 80, color: "#fffb7d", tags: []string{"tips"}},
	{text: "Tag notes to group them", x: 320, y: 80, color: "#a7f3d0", tags: []string{"tips", "tags"}},
	{text: "milk eggs bread coffee", x: 560, y: 80, color: "#fbcfe8", tags: []string{"errands"}},
}

func main() {
	cfg := config.Load()
	ctx := context.Background()

	db, err := database.NewGormDB(ctx, database.GormConfig{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.Connection,
		LogLevel:        cfg.Database.LogLevel,
		ConnectAttempts: cfg.Database.ConnectAttempts,
	})
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}
	defer database.Close(db)

	if err := database.Migrate(ctx, db, model.All()...); err != nil {
		log.Fatalf("Error: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer sysLogger.Sync()

	boardService := service.NewBoardService(uowFactory, nil, sysLogger)
	noteService := service.NewNoteService(uowFactory, nil, sysLogger)

	name := "Welcome"
	board, err := boardService.Create(ctx, &dto.CreateBoardRequest{Name: &name})
	if err != nil {
		log.Fatalf("Error creating board: %v", err)
	}
	log.Printf("Created board %d (%s)", board.Id, board.Name)

	for _, n := range welcomeNotes {
		n := n
		req := &dto.CreateNoteRequest{
			BoardId: &board.Id,
			NoteFields: dto.NoteFields{
				Text:  &n.text,
				X:     &n.x,
				Y:     &n.y,
				Color: &n.color,
				Tags:  n.tags,
			},
		}
		res, err := noteService.Create(ctx, req)
		if err != nil {
			log.Printf("Error creating note %q: %v", n.text, err)
			continue
		}
		log.Printf("Created note %v", res["id"])
	}

	log.Println("Seeding completed!")
}
