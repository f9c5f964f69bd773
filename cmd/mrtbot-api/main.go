// README: Entry point; loads config, wires services, starts the webhook server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mrtbot/internal/bot"
	"mrtbot/internal/config"
	"mrtbot/internal/fallback"
	httptransport "mrtbot/internal/http"
	"mrtbot/internal/infra"
	"mrtbot/internal/intent"
	"mrtbot/internal/modules/aiusage"
	"mrtbot/internal/modules/browse"
	"mrtbot/internal/modules/saved"
	"mrtbot/internal/modules/session"
	"mrtbot/internal/modules/shop"
	"mrtbot/internal/places"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Firebase.ProjectID == "" {
		log.Fatal("MRTBOT_FIREBASE_PROJECT_ID is required")
	}
	firebaseApp, err := infra.NewFirebaseApp(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		log.Fatalf("firebase init: %v", err)
	}
	firestoreClient, err := infra.NewFirestore(ctx, firebaseApp)
	if err != nil {
		log.Fatalf("firestore init: %v", err)
	}
	defer firestoreClient.Close()
	verifier, err := infra.NewFirebaseVerifier(ctx, firebaseApp)
	if err != nil {
		log.Fatalf("firebase auth init: %v", err)
	}

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	lineClient, err := infra.NewLineClient(cfg.Line.ChannelToken)
	if err != nil {
		log.Fatalf("line init: %v", err)
	}

	placesSvc, err := places.NewService(cfg.Maps.APIKey, places.Options{SortByRating: cfg.Search.SortByRating})
	if err != nil {
		log.Fatalf("places init: %v", err)
	}

	classifier, err := intent.NewGeminiClassifier(ctx, cfg.AI.GeminiKey)
	if err != nil {
		log.Fatalf("intent classifier init: %v", err)
	}
	defer classifier.Close()

	responder, err := fallback.NewGeminiResponder(ctx, cfg.AI.GeminiKey)
	if err != nil {
		log.Fatalf("fallback responder init: %v", err)
	}
	defer responder.Close()

	shopStore := shop.NewStore(firestoreClient)
	sessionStore := session.NewStore(redisClient, time.Duration(cfg.Session.TTLHours)*time.Hour)
	browseSvc := browse.NewService(sessionStore, shopStore)
	savedSvc := saved.NewService(saved.NewStore(dbPool), shopStore)
	quotaSvc := aiusage.NewService(aiusage.NewStore(dbPool))

	botSvc := bot.NewService(
		placesSvc,
		shopStore,
		sessionStore,
		browseSvc,
		savedSvc,
		quotaSvc,
		classifier,
		responder,
		lineClient,
		bot.NewRenderer(cfg.Maps.APIKey),
	)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		ChannelSecret: cfg.Line.ChannelSecret,
		Bot:           botSvc,
		Saved:         savedSvc,
		Verifier:      verifier,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
