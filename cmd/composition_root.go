package cmd

import (
	"context"
	"log/slog"
	"os"

	"chefbook/internal/adapters/in/auth"
	httpin "chefbook/internal/adapters/in/http"
	"chefbook/internal/adapters/in/ws"
	"chefbook/internal/adapters/out/email"
	"chefbook/internal/adapters/out/postgres"
	"chefbook/internal/adapters/out/postgres/orderrepo"
	"chefbook/internal/core/application/usecases/commands"
	"chefbook/internal/core/application/usecases/queries"
	"chefbook/internal/core/domain/model/kernel"
	"chefbook/internal/core/ports"
	"chefbook/internal/jobs"
	"chefbook/internal/notifications"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	tokenParser *auth.TokenParser
	registry    *ws.Registry
	dispatcher  *ws.Dispatcher
	worker      *notifications.Worker
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) *CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	tokenParser, err := auth.NewTokenParser(config.JWTSecret)
	if err != nil {
		logger.Error("jwt configuration invalid", "error", err)
		os.Exit(1)
	}

	registry := ws.NewRegistry()
	dispatcher := ws.NewDispatcher(registry, logger)

	var sender ports.EmailSender
	if config.SMTPHost != "" {
		sender = email.NewSMTPSender(
			config.SMTPHost, config.SMTPPort,
			config.SMTPUser, config.SMTPPass, config.MailFrom,
			accountMailboxResolver(),
		)
	} else {
		sender = email.NewLogSender(logger)
	}
	worker := notifications.NewWorker(sender, logger)

	return &CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:      logger,
		tokenParser: tokenParser,
		registry:    registry,
		dispatcher:  dispatcher,
		worker:      worker,
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) TokenParser() *auth.TokenParser {
	return c.tokenParser
}

func (c *CompositionRoot) NotificationWorker() *notifications.Worker {
	return c.worker
}

func (c *CompositionRoot) CreateWSHandler() *ws.Handler {
	pendingSource := orderrepo.NewGormOrderRepository(c.gormDB, noopTracker{})
	return ws.NewHandler(c.registry, c.tokenParser, pendingSource, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateExpireOverdueOrdersCommandHandler(), c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateAcceptOrderCommandHandler(),
		c.CreateRejectOrderCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreateDeclareOrderExpiredCommandHandler(),
		c.CreateSubmitPaymentCommandHandler(),
		c.CreateVerifyPaymentCommandHandler(),
		c.CreateMarkOrderPaidCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetPendingOrdersForChefQueryHandler(),
		c.CreateGetOrdersForCustomerQueryHandler(),
	)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.dispatcher, c.worker)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderUoWFactory(), c.dispatcher, c.worker)
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.orderUoWFactory(), c.dispatcher, c.worker)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory(), c.dispatcher, c.worker)
}

func (c *CompositionRoot) CreateDeclareOrderExpiredCommandHandler() commands.DeclareOrderExpiredCommandHandler {
	return commands.NewDeclareOrderExpiredCommandHandler(c.orderUoWFactory(), c.dispatcher, c.worker)
}

func (c *CompositionRoot) CreateExpireOverdueOrdersCommandHandler() commands.ExpireOverdueOrdersCommandHandler {
	return commands.NewExpireOverdueOrdersCommandHandler(c.orderUoWFactory(), c.dispatcher, c.worker)
}

func (c *CompositionRoot) CreateSubmitPaymentCommandHandler() commands.SubmitPaymentCommandHandler {
	return commands.NewSubmitPaymentCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateVerifyPaymentCommandHandler() commands.VerifyPaymentCommandHandler {
	return commands.NewVerifyPaymentCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateMarkOrderPaidCommandHandler() commands.MarkOrderPaidCommandHandler {
	return commands.NewMarkOrderPaidCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingOrdersForChefQueryHandler() queries.GetPendingOrdersForChefQueryHandler {
	return queries.NewGetPendingOrdersForChefQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersForCustomerQueryHandler() queries.GetOrdersForCustomerQueryHandler {
	return queries.NewGetOrdersForCustomerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

// accountMailboxResolver maps account ids to mailboxes. Until the accounts
// service exposes a directory endpoint, addresses follow the relay's
// catch-all convention.
func accountMailboxResolver() email.AddressResolver {
	return email.ResolverFunc(func(_ context.Context, accountID string) (string, error) {
		return accountID + "@accounts.local", nil
	})
}

// noopTracker satisfies the repository's tracker dependency for read-only
// use outside a unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
