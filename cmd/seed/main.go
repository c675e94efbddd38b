// Package main provides a CLI tool for seeding the database with demo data.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"opsdesk/internal/core/types"
	"opsdesk/internal/domain/billing"
	"opsdesk/internal/domain/catalogs/customer"
	"opsdesk/internal/domain/documents/invoice"
	"opsdesk/internal/domain/documents/order"
	"opsdesk/internal/domain/documents/ticket"
	"opsdesk/internal/domain/worksheets"
	"opsdesk/internal/infrastructure/sequence"
	"opsdesk/internal/infrastructure/storage/postgres"
	"opsdesk/internal/infrastructure/storage/postgres/catalog_repo"
	"opsdesk/internal/infrastructure/storage/postgres/document_repo"
	"opsdesk/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	poolCfg := postgres.DefaultPoolConfig(dbURL)
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	txm := postgres.NewTxManager(pool)
	allocator := sequence.New(pool)

	customerService := customer.NewService(catalog_repo.NewCustomerRepo(txm), txm)
	worksheetService := worksheets.NewService(catalog_repo.NewWorksheetRepo(txm), txm)
	invoiceService := invoice.NewService(document_repo.NewInvoiceRepo(txm), allocator, txm)
	orderService := order.NewService(document_repo.NewOrderRepo(txm), allocator, txm)
	ticketService := ticket.NewService(document_repo.NewTicketRepo(txm), allocator, txm)

	// --- Customers ---
	demoCustomers := []*customer.Customer{
		newCustomer("Acme Industries", "billing@acme.example", "Acme Industries", "Berlin"),
		newCustomer("Globex GmbH", "accounts@globex.example", "Globex GmbH", "Hamburg"),
		newCustomer("Initech Ltd", "finance@initech.example", "Initech Ltd", "Munich"),
	}
	for _, c := range demoCustomers {
		if err := customerService.Create(ctx, c); err != nil {
			log.Fatalw("failed to seed customer", "name", c.Name, "error", err)
		}
	}
	log.Infow("customers seeded", "count", len(demoCustomers))

	// --- Worksheets ---
	ws := worksheets.NewWorksheet("Quarterly account review", "Review open accounts and flag overdue invoices")
	ws.Priority = worksheets.PriorityHigh
	ws.DueDate = time.Now().AddDate(0, 0, 14)
	ws.Tags = []string{"finance", "review"}
	if err := worksheetService.Create(ctx, ws); err != nil {
		log.Fatalw("failed to seed worksheet", "error", err)
	}

	// --- Invoices ---
	inv := invoice.NewInvoice(demoCustomers[0].ID)
	inv.Items = billing.Items{
		{Description: "Consulting, 10h", Quantity: 10, UnitPrice: types.MustMoney("120.00")},
		{Description: "Travel expenses", Quantity: 1, UnitPrice: types.MustMoney("85.50")},
	}
	inv.DueDate = time.Now().AddDate(0, 1, 0)
	if err := invoiceService.Create(ctx, inv, billing.Overrides{
		Tax: types.MoneyPtr(types.MustMoney("244.25")),
	}); err != nil {
		log.Fatalw("failed to seed invoice", "error", err)
	}
	log.Infow("invoice seeded", "number", inv.Number, "total", inv.Total)

	// --- Orders ---
	ord := order.NewOrder(demoCustomers[1].ID, order.KindProduct)
	ord.Items = billing.Items{
		{Description: "Rack server", Quantity: 2, UnitPrice: types.MustMoney("1899.00")},
	}
	ord.DeliveryDate = time.Now().AddDate(0, 0, 7)
	if err := orderService.Create(ctx, ord, billing.Overrides{}); err != nil {
		log.Fatalw("failed to seed order", "error", err)
	}
	log.Infow("order seeded", "number", ord.Number)

	// --- Tickets ---
	tk := ticket.NewTicket(demoCustomers[2].ID, "Cannot download invoice PDF", "The download link on invoice pages returns a 404.")
	tk.Priority = ticket.PriorityHigh
	tk.Category = "billing"
	if err := ticketService.Create(ctx, tk); err != nil {
		log.Fatalw("failed to seed ticket", "error", err)
	}
	log.Infow("ticket seeded", "number", tk.Number)

	log.Info("seeding completed successfully")
}

func newCustomer(name, email, company, location string) *customer.Customer {
	c := customer.NewCustomer(name, email)
	c.Company = company
	c.Location = location
	return c
}
