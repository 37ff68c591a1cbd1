package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"pairchat/internal/common"
	"pairchat/internal/config"
	"pairchat/internal/conversation"
	"pairchat/internal/dbmysql"
	"pairchat/internal/message"
	"pairchat/internal/presence"
	"pairchat/internal/realtime"
	"pairchat/internal/relation"
)

func main() {
	log.Println("Starting Chat Service...")

	cnf := config.LoadConfig()
	common.SetJWTSecret(cnf.JWT.Secret)

	db, err := dbmysql.NewMySQL(cnf)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	lastSeen := newLastSeenStore(cnf)

	// Stores
	relationRepo := relation.NewRepository(db)
	conversationRepo := conversation.NewRepository(db)
	messageRepo := message.NewRepository(db)

	// Push channel
	socketServer := realtime.NewServer()
	hub := realtime.NewHub(socketServer)

	// Services
	relationService := relation.NewService(relationRepo, hub)
	conversationService := conversation.NewService(conversationRepo, relationRepo, messageRepo)
	messageService := message.NewService(messageRepo, conversationRepo, hub, common.SystemClock, message.Options{
		EditWindow:    cnf.Chat.EditWindow,
		UndoWindow:    cnf.Chat.UndoWindow,
		MaxBodyLength: cnf.Chat.MaxBodyLength,
	})

	// Presence
	registry := presence.NewRegistry()
	tracker := presence.NewTracker(registry, relationRepo, lastSeen, hub, common.SystemClock)

	realtime.NewRouter(socketServer, conversationRepo, messageService, tracker).Attach()

	// HTTP surface
	router := mux.NewRouter()
	router.Handle("/socket.io/", realtime.Handler(socketServer))

	api := router.PathPrefix("/api").Subrouter()
	api.Use(common.AuthMiddleware)
	relation.NewHandler(relationService).RegisterRoutes(api)
	conversation.NewHandler(conversationService).RegisterRoutes(api)
	message.NewHandler(messageService).RegisterRoutes(api)

	server := &http.Server{
		Addr:         cnf.Server.Host + ":" + cnf.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cnf.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cnf.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("Chat Service running on port %s", cnf.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down Chat Service...")
	socketServer.Close(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	log.Println("Chat Service stopped")
}

// newLastSeenStore picks Redis when configured, otherwise a process-local
// fallback. The session table itself is always in-memory.
func newLastSeenStore(cnf *config.Config) presence.LastSeenStore {
	if cnf.Redis.Addr == "" {
		log.Println("Redis not configured, keeping last-seen in memory")
		return presence.NewMemoryLastSeen()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cnf.Redis.Addr,
		Password: cnf.Redis.Password,
		DB:       cnf.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unreachable (%v), keeping last-seen in memory", err)
		return presence.NewMemoryLastSeen()
	}

	log.Println("✅ Connected to Redis successfully")
	return presence.NewRedisLastSeen(client)
}
