package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"doctors-portal-server/models"
	"doctors-portal-server/services"
)

var defaultSlots = []string{
	"08.00 AM - 08.30 AM",
	"08.30 AM - 09.00 AM",
	"09.00 AM - 9.30 AM",
	"09.30 AM - 10.00 AM",
	"10.00 AM - 10.30 AM",
	"10.30 AM - 11.00 AM",
	"11.00 AM - 11.30 AM",
	"11.30 AM - 12.00 AM",
	"1.00 PM - 1.30 PM",
	"1.30 PM - 2.30 PM",
	"3.00 PM - 3.30 PM",
	"3.30 PM - 4.00 PM",
	"4.00 PM - 4.30 PM",
	"4.30 PM - 5.00 PM",
}

// DefaultCatalog is inserted once when the appointmentOptions collection is
// empty. Prices are left unset so the reconciliation job and /addPrice can be
// observed doing their work.
func DefaultCatalog() []models.AppointmentOption {
	names := []string{
		"Teeth Orthodontics",
		"Cosmetic Dentistry",
		"Teeth Cleaning",
		"Cavity Protection",
		"Pediatric Dental",
		"Oral Surgery",
	}
	catalog := make([]models.AppointmentOption, 0, len(names))
	for _, name := range names {
		slots := make([]string, len(defaultSlots))
		copy(slots, defaultSlots)
		catalog = append(catalog, models.AppointmentOption{Name: name, Slots: slots})
	}
	return catalog
}

func SeedAppointmentOptions(options *services.OptionService) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := options.Seed(ctx, DefaultCatalog()); err != nil {
		log.Println("Error seeding appointment options:", err)
	}
}

// StartDailyScheduler backfills the default price on any option that was
// created without one. Runs every day at 00:15.
func StartDailyScheduler(options *services.OptionService) *cron.Cron {
	c := cron.New()

	c.AddFunc("15 0 * * *", func() {
		log.Println("Running daily appointment option price reconciliation...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		modified, err := options.BackfillMissingPrices(ctx)
		if err != nil {
			log.Println("Error reconciling option prices:", err)
			return
		}
		if modified > 0 {
			log.Printf("Backfilled price on %d options\n", modified)
		}
	})

	c.Start()
	return c
}
