package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"campsite/config"
	"campsite/models"
	"campsite/services"
)

// BookingCompleter moves expired paid bookings to COMPLETED.
type BookingCompleter interface {
	CompleteExpiredBookings(now time.Time) ([]models.Booking, error)
}

var bookingCompleter BookingCompleter

// SetBookingCompleter installs the implementation used by the cron job.
func SetBookingCompleter(completer BookingCompleter) {
	bookingCompleter = completer
}

// InitCronJobs registers and starts the scheduled jobs.
// AUTO_COMPLETE_BOOKINGS=false disables the nightly completion run.
func InitCronJobs(c *cron.Cron, broadcaster *services.Broadcaster) error {
	if config.GetEnvDefault("AUTO_COMPLETE_BOOKINGS", "true") == "false" {
		log.Println("Booking auto-completion disabled")
		c.Start()
		return nil
	}

	// Every night at midnight
	_, err := c.AddFunc("0 0 * * *", func() {
		if bookingCompleter == nil {
			log.Println("BookingCompleter not configured, skipping run")
			return
		}

		completed, err := bookingCompleter.CompleteExpiredBookings(time.Now())
		if err != nil {
			log.Printf("Booking auto-completion failed: %v", err)
			return
		}

		for i := range completed {
			broadcaster.Updated(services.EntityBookings, &completed[i])
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
