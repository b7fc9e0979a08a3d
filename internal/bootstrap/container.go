package bootstrap

import (
	"fmt"
	"log"

	"bulletin-board-be/internal/config"
	"bulletin-board-be/internal/controller"
	"bulletin-board-be/internal/pkg/logger"
	"bulletin-board-be/internal/repository/unitofwork"
	"bulletin-board-be/internal/service"
	"bulletin-board-be/pkg/events"
	"bulletin-board-be/pkg/llm"
	llmcache "bulletin-board-be/pkg/llm/cache"
	"bulletin-board-be/pkg/llm/factory"
	pktNats "bulletin-board-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

const activityDurable = "activity-log"

type Container struct {
	// Controllers
	HomeController   controller.IHomeController
	BoardController  controller.IBoardController
	NoteController   controller.INoteController
	FormatController controller.IFormatController

	// Background Services (Exposed for main.go to run)
	ActivityService service.IActivityService

	Logger logger.ILogger

	activityLogger logger.ILogger
	natsPublisher  natsPublisher
	natsSubscriber natsSubscriber
	pubSub         *gochannel.GoChannel
}

type natsPublisher interface {
	events.Publisher
	Close()
}

type natsSubscriber interface {
	events.Source
	Close()
}

// natsDialer opens the two NATS halves of the event bus.
type natsDialer struct {
	publisher  func(url string) (natsPublisher, error)
	subscriber func(url, durable string) (natsSubscriber, error)
}

var dialNats = natsDialer{
	publisher: func(url string) (natsPublisher, error) {
		p, err := pktNats.NewPublisher(url)
		if err != nil {
			return nil, err
		}
		return p, nil
	},
	subscriber: func(url, durable string) (natsSubscriber, error) {
		s, err := pktNats.NewSubscriber(url, durable)
		if err != nil {
			return nil, err
		}
		return s, nil
	},
}

// Options overrides pieces of the container. Zero values use the config.
type Options struct {
	Logger      logger.ILogger
	LLMProvider llm.LLMProvider
}

func NewContainer(db *gorm.DB, cfg *config.Config) (*Container, error) {
	return NewContainerWithOptions(db, cfg, Options{})
}

func NewContainerWithOptions(db *gorm.DB, cfg *config.Config, opts Options) (*Container, error) {
	c := &Container{}

	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	c.Logger = opts.Logger
	if c.Logger == nil {
		c.Logger = logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	}

	// 2. Generation service
	llmProvider := opts.LLMProvider
	if llmProvider == nil {
		provider, err := factory.NewLLMProvider(
			cfg.Ai.LLMProvider,
			cfg.Ai.LLMModel,
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.Timeout,
		)
		if err != nil {
			return nil, fmt.Errorf("initialize LLM provider: %w", err)
		}
		llmProvider = llmcache.NewCachedProvider(provider, cfg.Ai.CacheTTL)
		log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	}

	// 3. Event Bus: NATS when configured, otherwise an in-process channel.
	// Either way the activity service drains it into the activity log.
	c.activityLogger = logger.NewIsolatedLogger(cfg.App.ActivityLogFilePath)

	publisher, source := c.connectEventBus(cfg, dialNats)
	c.ActivityService = service.NewActivityService(source, c.activityLogger)

	// 4. Services
	boardService := service.NewBoardService(uowFactory, publisher, c.Logger)
	noteService := service.NewNoteService(uowFactory, publisher, c.Logger)
	formatService := service.NewFormatService(uowFactory, llmProvider, publisher, c.Logger)

	// 5. Controllers
	c.HomeController = controller.NewHomeController()
	c.BoardController = controller.NewBoardController(boardService)
	c.NoteController = controller.NewNoteController(noteService)
	c.FormatController = controller.NewFormatController(formatService)

	return c, nil
}

// connectEventBus returns a matched publisher and source. NATS is used only when
// both halves connect; otherwise events stay on an in-process channel.
func (c *Container) connectEventBus(cfg *config.Config, dial natsDialer) (events.Publisher, events.Source) {
	if cfg.Events.NatsURL != "" {
		natsPub, err := dial.publisher(cfg.Events.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			natsSub, err := dial.subscriber(cfg.Events.NatsURL, activityDurable)
			if err != nil {
				log.Printf("[WARN] Failed to connect to NATS Subscriber, falling back to in-process events: %v", err)
				natsPub.Close()
			} else {
				c.natsPublisher = natsPub
				c.natsSubscriber = natsSub
				return natsPub, natsSub
			}
		}
	}

	c.pubSub = gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 256},
		watermill.NewStdLogger(false, false),
	)
	return events.NewChannelPublisher(c.pubSub, cfg.Events.Topic), events.NewChannelSource(c.pubSub, cfg.Events.Topic)
}

// Close releases the event bus and flushes the loggers.
func (c *Container) Close() {
	if c.natsSubscriber != nil {
		c.natsSubscriber.Close()
	}
	if c.natsPublisher != nil {
		c.natsPublisher.Close()
	}
	if c.pubSub != nil {
		if err := c.pubSub.Close(); err != nil {
			log.Printf("[WARN] Failed to close event channel: %v", err)
		}
	}
	if c.activityLogger != nil {
		_ = c.activityLogger.Sync()
	}
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
}
