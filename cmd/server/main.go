package main

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/hiagocrazzy2017/stop-mania-dash/internal/config"
	"github.com/hiagocrazzy2017/stop-mania-dash/internal/game"
	"github.com/hiagocrazzy2017/stop-mania-dash/internal/room"
	"github.com/hiagocrazzy2017/stop-mania-dash/internal/ws"
	"github.com/hiagocrazzy2017/stop-mania-dash/logger"
	"github.com/hiagocrazzy2017/stop-mania-dash/pkg/utils"
)

func main() {
	config.Load()

	store := room.NewStore(game.NewValidator(), room.Config{
		RoundSeconds: config.RoundSeconds(),
		MaxPlayers:   config.MaxPlayers(),
	})
	hub := ws.NewHub()
	handler := ws.NewHandler(store, hub)

	store.SetTimerHooks(
		func(roomID string, timeLeft int) {
			hub.Broadcast(roomID, ws.TypeTimer, map[string]int{"timeLeft": timeLeft})
		},
		func(roomID string) {
			handler.EndRound(roomID)
		},
	)

	app := fiber.New()
	app.Use(cors.New())

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws/:roomId/:playerId?", websocket.New(handler.ServeWS))

	app.Post("/room/create", func(c *fiber.Ctx) error {
		r := store.CreateRoom(utils.GenShortID())
		return c.JSON(fiber.Map{"roomId": r.ID})
	})

	app.Get("/api/rooms", func(c *fiber.Ctx) error {
		rooms := store.AllRooms()
		out := make([]fiber.Map, 0, len(rooms))
		for _, r := range rooms {
			r.Mu.RLock()
			out = append(out, fiber.Map{
				"roomId":  r.ID,
				"state":   r.State,
				"players": len(r.Players),
			})
			r.Mu.RUnlock()
		}
		return c.JSON(out)
	})

	app.Get("/api/stats", func(c *fiber.Ctx) error {
		return c.JSON(store.Stats())
	})

	app.Get("/room/:id", func(c *fiber.Ctx) error {
		r, err := store.GetRoom(c.Params("id"))
		if err != nil {
			return c.Status(404).JSON(fiber.Map{"error": "room not found"})
		}
		r.Mu.RLock()
		defer r.Mu.RUnlock()
		return c.JSON(r)
	})

	app.Put("/room/:id/categories", func(c *fiber.Ctx) error {
		var categories []room.Category
		if err := c.BodyParser(&categories); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid categories"})
		}
		r, err := store.UpdateCategories(c.Params("id"), categories)
		if err != nil {
			return c.Status(404).JSON(fiber.Map{"error": "room not found"})
		}
		r.Mu.RLock()
		defer r.Mu.RUnlock()
		return c.JSON(r)
	})

	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	logger.Info("server listening on :%s", config.Port())
	if err := app.Listen(":" + config.Port()); err != nil {
		logger.Fatal("listen: %v", err)
	}
}
