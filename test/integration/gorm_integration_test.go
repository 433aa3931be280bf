package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"ai-ordering-be/internal/constant"
	"ai-ordering-be/internal/entity"
	"ai-ordering-be/internal/repository/specification"
	"ai-ordering-be/internal/repository/unitofwork"
	"ai-ordering-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.SessionRepository())
	assert.NotNil(t, uow.OrderRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Item Repository", func(t *testing.T) {
		count, err := uow.ItemRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Item count: %d", count)
	})

	t.Run("Session Draft Round Trip", func(t *testing.T) {
		ctx := context.Background()

		business := &entity.Business{
			Id:       uuid.New(),
			Name:     "Integration Business " + uuid.New().String(),
			Timezone: "UTC",
		}
		err := uow.BusinessRepository().Create(ctx, business)
		assert.NoError(t, err)

		session := &entity.Session{
			Id:         uuid.New(),
			BusinessId: business.Id,
			CustomerId: "628123" + uuid.New().String(),
			Channel:    "whatsapp",
			Mode:       constant.ModeDelivery,
			Step:       constant.StepStart,
			CreatedAt:  time.Now(),
		}
		session.Draft.EnsureOrder().Cart = []entity.CartLine{
			{ItemId: uuid.New(), Name: "Nasi Goreng", UnitPrice: 25000, Quantity: 2},
		}

		err = uow.SessionRepository().Create(ctx, session)
		assert.NoError(t, err)

		loaded, err := uow.SessionRepository().FindOne(ctx,
			specification.ByID{ID: session.Id},
		)
		assert.NoError(t, err)
		if assert.NotNil(t, loaded) && assert.NotNil(t, loaded.Draft.Order) {
			assert.Len(t, loaded.Draft.Order.Cart, 1)
			assert.Equal(t, "Nasi Goreng", loaded.Draft.Order.Cart[0].Name)
			assert.Equal(t, 2, loaded.Draft.Order.Cart[0].Quantity)
		}
	})

	t.Run("Eligible Session Filter", func(t *testing.T) {
		ctx := context.Background()
		businessId := uuid.New()
		customerId := "628" + uuid.New().String()

		employeeId := uuid.New()
		locked := &entity.Session{
			Id:                 uuid.New(),
			BusinessId:         businessId,
			CustomerId:         customerId,
			Channel:            "whatsapp",
			Mode:               constant.ModeSupport,
			Step:               constant.StepStart,
			Locked:             true,
			AssignedEmployeeId: &employeeId,
			CreatedAt:          time.Now(),
		}
		err := uow.SessionRepository().Create(ctx, locked)
		assert.NoError(t, err)

		found, err := uow.SessionRepository().FindOne(ctx,
			specification.ByBusinessID{BusinessID: businessId},
			specification.ByCustomer{CustomerID: customerId},
			specification.EligibleForBot{},
		)
		assert.NoError(t, err)
		assert.Nil(t, found, "locked sessions must be invisible to the bot")
	})

	t.Run("Order Status History Append", func(t *testing.T) {
		ctx := context.Background()

		order := &entity.Order{
			Id:         uuid.New(),
			BusinessId: uuid.New(),
			CustomerId: "628" + uuid.New().String(),
			Lines: []entity.OrderLine{
				{ItemId: uuid.New(), Name: "Ayam Bakar", UnitPrice: 30000, Quantity: 1},
			},
			Subtotal:     30000,
			Total:        30000,
			DeliveryType: constant.DeliveryTypeTakeaway,
			Status:       constant.OrderStatusAccepted,
			CreatedAt:    time.Now(),
		}
		err := uow.OrderRepository().Create(ctx, order)
		assert.NoError(t, err)

		err = uow.OrderRepository().AppendStatusHistory(ctx, &entity.OrderStatusHistory{
			Id:        uuid.New(),
			OrderId:   order.Id,
			Status:    constant.OrderStatusAccepted,
			ChangedBy: constant.ActorCustomer,
			ChangedAt: time.Now(),
		})
		assert.NoError(t, err)

		history, err := uow.OrderRepository().FindStatusHistory(ctx, order.Id)
		assert.NoError(t, err)
		assert.Len(t, history, 1)
	})
}
