package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"glambook/internal/bookings"
	"glambook/internal/catalog"
	"glambook/internal/pricing"
	"glambook/internal/shared/config"
	"glambook/internal/shared/database"
)

type Seeder struct {
	db   *database.DB
	repo bookings.Repository
	cat  *catalog.Catalog
}

func main() {
	fmt.Println("🌱 Starting GlamBook Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{
		db:   db,
		repo: bookings.NewRepository(db.GetPostgreSQL()),
		cat:  catalog.Default(),
	}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	// Delete in reverse dependency order
	tables := []string{
		"payments",
		"bookings",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit().Error
}

// SeedAll creates demo bookings in each lifecycle status
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	if err := s.SeedBookings(ctx); err != nil {
		return fmt.Errorf("failed to seed bookings: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
		log.Printf("Warning: Failed to clear Redis cache: %v", err)
	}

	return nil
}

type seedBooking struct {
	name        string
	email       string
	phone       string
	daysFromNow int
	readyTime   string
	serviceID   string
	option      *catalog.ServiceOption
	delivery    catalog.DeliveryMode
	locationID  string
	extensions  int
	trial       bool
	party       pricing.BridalPartyServices
	status      bookings.Status
	tier        string
	depositPaid bool
}

// SeedBookings creates sample bookings through the same pricing pipeline the
// quote endpoint uses, so seeded quotes match what the calculator would return.
func (s *Seeder) SeedBookings(ctx context.Context) error {
	fmt.Println("  💄 Seeding bookings...")

	optFull := catalog.OptionMakeupAndHair
	optMakeup := catalog.OptionMakeupOnly

	seedData := []seedBooking{
		{
			name: "Priya Sharma", email: "priya.sharma@example.com", phone: "+1-416-555-0134",
			daysFromNow: 21, readyTime: "09:00",
			serviceID: catalog.ServiceBridal, option: &optFull,
			delivery: catalog.DeliveryMobile, locationID: "gta",
			extensions: 2, trial: true,
			party: pricing.BridalPartyServices{
				Enabled:       true,
				HairAndMakeup: 3,
				MakeupOnly:    2,
				SareeDraping:  2,
			},
			status: bookings.StatusConfirmed, tier: "lead", depositPaid: true,
		},
		{
			name: "Amina Hassan", email: "amina.hassan@example.com", phone: "+1-647-555-0188",
			daysFromNow: 35, readyTime: "10:30",
			serviceID: catalog.ServiceSemiBridal, option: &optFull,
			delivery: catalog.DeliveryStudio,
			trial:    false,
			party: pricing.BridalPartyServices{
				Enabled:      true,
				HairOnly:     1,
				HijabSetting: 2,
			},
			status: bookings.StatusQuoted,
		},
		{
			name: "Jessica Chen", email: "jess.chen@example.com", phone: "+1-905-555-0123",
			daysFromNow: 14, readyTime: "07:30",
			serviceID: "glam", option: &optMakeup,
			delivery: catalog.DeliveryMobile, locationID: "toronto",
			status: bookings.StatusQuoted, tier: "team",
		},
		{
			name: "Fatima Ali", email: "fatima.ali@example.com", phone: "+1-416-555-0177",
			daysFromNow: 50, readyTime: "08:00",
			serviceID: catalog.ServiceBridal, option: &optFull,
			delivery: catalog.DeliveryMobile, locationID: "outside-gta",
			extensions: 3, trial: true,
			party: pricing.BridalPartyServices{
				Enabled:               true,
				HairAndMakeup:         5,
				DupattaSetting:        2,
				ExtensionInstallation: 1,
				Airbrush:              1,
			},
			status: bookings.StatusQuoted,
		},
		{
			name: "Sarah Wilson", email: "sarah.w@example.com", phone: "+1-289-555-0142",
			daysFromNow: -10, readyTime: "11:00",
			serviceID: "photoshoot",
			delivery:  catalog.DeliveryStudio,
			status:    bookings.StatusCancelled,
		},
	}

	for _, data := range seedData {
		if err := s.createBooking(ctx, data); err != nil {
			return err
		}
	}

	return nil
}

func (s *Seeder) createBooking(ctx context.Context, data seedBooking) error {
	svc, ok := s.cat.ServiceByID(data.serviceID)
	if !ok {
		return fmt.Errorf("unknown service id %q", data.serviceID)
	}

	appointmentDate := time.Now().AddDate(0, 0, data.daysFromNow)
	dateStr := appointmentDate.Format("2006-01-02")

	day := pricing.BookingDay{
		Date:             dateStr,
		ReadyTime:        data.readyTime,
		ServiceID:        data.serviceID,
		Option:           data.option,
		HairExtensions:   data.extensions,
		DeliveryMode:     data.delivery,
		TravelLocationID: data.locationID,
	}

	trial := pricing.BridalTrial{Enabled: data.trial}
	if data.trial {
		trialDate := appointmentDate.AddDate(0, 0, -14)
		trial.Date = trialDate.Format("2006-01-02")
		trial.Time = "14:00"
	}

	lead, team := pricing.ComputeQuotes(s.cat, []pricing.BookingDay{day}, trial, data.party)

	optionLabel := "Standard"
	if data.option != nil {
		if m, found := s.cat.OptionByID(*data.option); found {
			optionLabel = m.Label
		}
	}

	locationLabel := ""
	if data.locationID != "" {
		if loc, found := s.cat.LocationByID(data.locationID); found {
			locationLabel = loc.Label
		}
	}

	appointmentAt, err := time.ParseInLocation("2006-01-02 15:04", dateStr+" "+data.readyTime, time.Local)
	if err != nil {
		return fmt.Errorf("failed to parse appointment time: %w", err)
	}

	booking := &bookings.Booking{
		ID:          fmt.Sprintf("%06d", 100000+rand.Intn(900000)),
		ClientName:  data.name,
		ClientEmail: data.email,
		ClientPhone: data.phone,
		Days: []bookings.DaySummary{{
			Date:            dateStr,
			ReadyTime:       data.readyTime,
			ServiceID:       svc.ID,
			ServiceName:     svc.Name,
			OptionLabel:     optionLabel,
			DeliveryMode:    string(data.delivery),
			LocationLabel:   locationLabel,
			DurationMinutes: svc.DurationMinutes,
		}},
		Trial: bookings.TrialSummary{
			Enabled: trial.Enabled,
			Date:    trial.Date,
			Time:    trial.Time,
		},
		Party:                data.party,
		LeadQuote:            lead,
		TeamQuote:            team,
		AppointmentAt:        appointmentAt,
		TotalDurationMinutes: svc.DurationMinutes,
		Status:               data.status.String(),
	}

	if data.tier != "" {
		tier := data.tier
		booking.SelectedTier = &tier
	}
	if data.status == bookings.StatusCancelled {
		cancelledAt := time.Now().AddDate(0, 0, -12)
		booking.CancelledAt = &cancelledAt
	}

	if err := s.repo.CreateBooking(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking for %s: %w", data.email, err)
	}

	if data.depositPaid {
		quote := booking.QuoteForTier(data.tier)
		payment := &bookings.Payment{
			BookingID:       booking.ID,
			Amount:          quote.Total / 2,
			Currency:        "CAD",
			StripeSessionID: fmt.Sprintf("cs_test_seed_%s", booking.ID),
		}
		payment.MarkDepositPaid()
		if err := s.repo.SavePayment(ctx, payment); err != nil {
			return fmt.Errorf("failed to create payment for %s: %w", booking.ID, err)
		}
	}

	fmt.Printf("    ✅ Created booking: %s - %s (%s, lead $%.2f / team $%.2f)\n",
		booking.ID, data.name, data.status, lead.Total, team.Total)

	return nil
}
