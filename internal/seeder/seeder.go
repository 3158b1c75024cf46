package seeder

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/bazaar-dev/bazaar/internal/database"
	"github.com/bazaar-dev/bazaar/internal/entity"
)

var Module = fx.Provide(New)

// Seeder performs database seeding for local/dev setups.
type Seeder struct {
	db     *bun.DB
	logger *zap.Logger
}

// New constructs a Seeder backed by the primary database connection.
func New(conns *database.Connections, logger *zap.Logger) *Seeder {
	return &Seeder{db: conns.Writer, logger: logger}
}

var customerNames = []string{
	"Ana Souza", "Bruno Lima", "Carla Mendes", "Diego Rocha", "Elisa Prado",
	"Fernando Alves", "Gabriela Costa", "Henrique Dias", "Isabela Nunes", "Joao Pereira",
	"Karina Lopes", "Lucas Martins", "Mariana Silva", "Nelson Castro", "Olivia Ramos",
	"Paulo Teixeira", "Quesia Borges", "Rafael Gomes", "Sofia Cardoso", "Tiago Freitas",
}

var productNames = []string{
	"Espresso Beans", "Green Tea Tin", "Ceramic Mug", "French Press", "Pour Over Kit",
	"Milk Frother", "Cold Brew Jar", "Filter Papers", "Burr Grinder", "Travel Tumbler",
	"Honey Jar", "Cocoa Powder", "Vanilla Syrup", "Oat Biscuits", "Dark Chocolate Bar",
	"Serving Tray", "Tea Infuser", "Coffee Scale", "Gooseneck Kettle", "Storage Canister",
}

// Customers seeds a fixed roster of customers if they are missing.
func (s *Seeder) Customers(ctx context.Context) error {
	for i, name := range customerNames {
		customer := entity.Customer{ID: int64(i + 1), Name: name}
		_, err := s.db.NewInsert().Model(&customer).
			On("CONFLICT (id) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("seed customer %d: %w", customer.ID, err)
		}
	}

	if s.logger != nil {
		s.logger.Info("seeded customers", zap.Int("count", len(customerNames)))
	}
	return nil
}

// Products seeds the catalog if it is missing.
func (s *Seeder) Products(ctx context.Context) error {
	for i, name := range productNames {
		product := entity.Product{ID: int64(i + 1), Name: name}
		_, err := s.db.NewInsert().Model(&product).
			On("CONFLICT (id) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("seed product %d: %w", product.ID, err)
		}
	}

	if s.logger != nil {
		s.logger.Info("seeded products", zap.Int("count", len(productNames)))
	}
	return nil
}
