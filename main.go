package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/appditto/survey-push-server/config"
	"github.com/appditto/survey-push-server/controller"
	"github.com/appditto/survey-push-server/database"
	"github.com/appditto/survey-push-server/models"
	"github.com/appditto/survey-push-server/net"
	"github.com/appditto/survey-push-server/notifications"
	"github.com/appditto/survey-push-server/reminders"
	"github.com/appditto/survey-push-server/repository"
	"github.com/appditto/survey-push-server/utils"
	"github.com/appleboy/go-fcm"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/websocket/v2"
	"k8s.io/klog/v2"
)

var Version = "dev"

func usage() {
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	// Server options
	flag.Usage = usage
	klog.InitFlags(nil)
	flag.Set("logtostderr", "true")
	flag.Set("stderrthreshold", "INFO")
	flag.Set("v", "3")
	scheduleSurvey := flag.String("schedule-survey", "", "Schedule the daily survey reminders at this RFC3339 time and exit")
	cancelSurvey := flag.Bool("cancel-survey", false, "Cancel every scheduled survey reminder and exit")
	version := flag.Bool("version", false, "Display the version")
	flag.Parse()

	if *version {
		fmt.Printf("Survey push server version: %s\n", Version)
		os.Exit(0)
	}

	location, err := time.LoadLocation(utils.GetEnv("REMINDER_TZ", "Local"))
	if err != nil {
		klog.Errorf("Invalid REMINDER_TZ: %v", err)
		os.Exit(1)
	}

	// Setup database conn
	dbConfig := &database.Config{
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		Password: os.Getenv("DB_PASS"),
		User:     os.Getenv("DB_USER"),
		SSLMode:  os.Getenv("DB_SSLMODE"),
		DBName:   os.Getenv("DB_NAME"),
	}
	fmt.Println("🏡 Connecting to database...")
	db, err := database.NewConnection(dbConfig)
	if err != nil {
		panic(err)
	}

	fmt.Println("🦋 Running database migrations...")
	if err := database.Migrate(db); err != nil {
		panic(err)
	}

	// Token store
	var tokenStore repository.TokenStore
	switch utils.GetEnv("TOKEN_STORE", "redis") {
	case "redis":
		tokenStore = &repository.RedisTokenStore{}
	case "postgres":
		tokenStore = &repository.GormTokenStore{DB: db}
	default:
		klog.Errorf("TOKEN_STORE must be redis or postgres")
		os.Exit(1)
	}
	pushTokenRepo := &repository.PushTokenRepo{DB: db}
	reminderRepo := &repository.ReminderRepo{DB: db}

	if timeout := utils.GetEnv("PUSH_HTTP_TIMEOUT", ""); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			klog.Errorf("Invalid PUSH_HTTP_TIMEOUT: %v", err)
			os.Exit(1)
		}
		net.Client = net.NewClient(d)
	}

	// Push transports, FCM only when configured
	sender := &net.RoutingSender{
		Expo: &net.ExpoSender{Url: utils.GetEnv("EXPO_PUSH_URL", config.EXPO_PUSH_URL)},
	}
	if fcmKey := utils.GetEnv("FCM_API_KEY", ""); fcmKey != "" {
		fcmClient, err := fcm.NewClient(fcmKey)
		if err != nil {
			klog.Errorf("Error initating FCM client: %v", err)
			os.Exit(1)
		}
		sender.Fcm = &net.FcmSender{Client: fcmClient}
	}

	service := notifications.NewService(notifications.Options{
		Store:    tokenStore,
		Sender:   sender,
		Recorder: pushTokenRepo,
		Handler:  notifications.DefaultHandlerConfig,
	})

	cron := reminders.NewCronScheduler(location, reminderRepo, func(ctx context.Context, content reminders.Content) error {
		return service.Send(ctx, content.Title, content.Body, nil)
	})
	scheduler := &reminders.Scheduler{Triggers: cron, Location: location}

	// One-shot jobs
	if *scheduleSurvey != "" {
		t, err := time.Parse(time.RFC3339, *scheduleSurvey)
		if err != nil {
			klog.Errorf("Invalid -schedule-survey time: %v", err)
			os.Exit(1)
		}
		scheduler.ScheduleDailySurvey(t)
		scheduler.Wait()
		os.Exit(0)
	} else if *cancelSurvey {
		if err := scheduler.CancelScheduledSurvey(context.Background()); err != nil {
			klog.Errorf("Error cancelling scheduled survey: %v", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	restored, err := cron.Restore(context.Background())
	if err != nil {
		klog.Errorf("Error restoring scheduled reminders: %v", err)
		os.Exit(1)
	}
	klog.Infof("Restored %d scheduled reminders", restored)

	// Create app
	app := fiber.New()

	wsClientMap := controller.NewWSSubscriptions()
	hc := controller.HttpController{Service: service, Scheduler: scheduler, PushTokenRepo: pushTokenRepo}
	wsc := controller.WsController{Service: service, WSClientMap: wsClientMap}

	// Cors middleware
	app.Use(cors.New())
	// Pprof
	app.Use(pprof.New())

	// HTTP Routes
	app.Post("/api", hc.HandleAction)

	// Websocket upgrade
	app.Use("/", func(c *fiber.Ctx) error {
		c.Locals("ip", utils.IPAddress(c))
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/", websocket.New(wsc.HandleWSMessage))

	// 404 Handler
	app.Use(func(c *fiber.Ctx) error {
		return c.SendStatus(404)
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Follow upstream notification responses
	responseChan := make(chan *models.NotificationResponse, 100)
	if utils.GetEnv("RESPONSES_WS_URL", "") != "" {
		go net.StartResponsesWSClient(ctx, utils.GetEnv("RESPONSES_WS_URL", ""), &responseChan)
	}

	go func() {
		for response := range responseChan {
			klog.V(3).Infof("Dispatching notification response to %d listeners", service.Listeners())
			service.DispatchResponse(response)
		}
	}()

	go func() {
		<-ctx.Done()
		klog.Infof("Shutting down")
		wsClientMap.CloseAll()
		if err := app.Shutdown(); err != nil {
			klog.Errorf("Error shutting down server: %v", err)
		}
	}()

	if err := app.Listen(utils.GetEnv("LISTEN_ADDR", ":3000")); err != nil {
		klog.Errorf("Server stopped: %v", err)
	}
	cron.Stop()
}
