package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"campsite/config"
	"campsite/constants"
	"campsite/dto"
	"campsite/errors"
	"campsite/models"
	"campsite/utils"
)

const (
	analyticsCacheKey = "analytics:summary"
	analyticsCacheTTL = 5 * time.Minute
)

// German short month names, matching the de-DE labels of the dashboard.
var germanShortMonths = [...]string{
	"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni",
	"Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez.",
}

var statusDisplay = []struct {
	Status string
	Name   string
	Color  string
}{
	{constants.BookingStatusConfirmed, "Bestätigt", "#10b981"},
	{constants.BookingStatusPending, "Ausstehend", "#f59e0b"},
	{constants.BookingStatusPaid, "Bezahlt", "#3b82f6"},
	{constants.BookingStatusCancelled, "Storniert", "#ef4444"},
	{constants.BookingStatusCompleted, "Abgeschlossen", "#6b7280"},
}

// AnalyticsService aggregates the read-only revenue/occupancy summary.
// Results are cached in redis for a few minutes; mutations on bookings
// invalidate the cache.
type AnalyticsService struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewAnalyticsService(db *gorm.DB, rdb *redis.Client) *AnalyticsService {
	return &AnalyticsService{db: db, rdb: rdb}
}

func (s *AnalyticsService) GetSummary() (*dto.AnalyticsResponse, error) {
	if s.rdb != nil {
		var cached dto.AnalyticsResponse
		if err := GetFromRedis(config.Ctx, s.rdb, analyticsCacheKey, &cached); err == nil && cached.RevenueByMonth != nil {
			return &cached, nil
		}
	}

	summary, err := s.compute()
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if err := SetToRedis(config.Ctx, s.rdb, analyticsCacheKey, summary, analyticsCacheTTL); err != nil {
			utils.LogError("failed to cache analytics summary: %v", err)
		}
	}
	return summary, nil
}

// InvalidateCache drops the cached summary after a booking mutation.
func (s *AnalyticsService) InvalidateCache() {
	if s.rdb == nil {
		return
	}
	if err := DeleteFromRedis(config.Ctx, s.rdb, analyticsCacheKey); err != nil {
		utils.LogError("failed to invalidate analytics cache: %v", err)
	}
}

func (s *AnalyticsService) compute() (*dto.AnalyticsResponse, error) {
	var places []models.CampingPlace
	if err := s.db.Find(&places).Error; err != nil {
		return nil, errors.NewInternal(err)
	}
	var items []models.CampingItem
	if err := s.db.Find(&items).Error; err != nil {
		return nil, errors.NewInternal(err)
	}
	var bookings []models.Booking
	if err := s.db.Find(&bookings).Error; err != nil {
		return nil, errors.NewInternal(err)
	}

	revenueStatus := map[string]bool{}
	for _, st := range constants.RevenueBookingStatuses {
		revenueStatus[st] = true
	}

	var confirmed []models.Booking
	statusCounts := map[string]int{}
	var totalRevenue, totalGuests float64
	for _, b := range bookings {
		statusCounts[b.Status]++
		totalGuests += float64(b.Guests)
		if revenueStatus[b.Status] {
			confirmed = append(confirmed, b)
			totalRevenue += b.TotalPrice
		}
	}

	resp := dto.AnalyticsResponse{
		TotalRevenue:      totalRevenue,
		TotalBookings:     len(bookings),
		ConfirmedBookings: len(confirmed),
		PendingBookings:   statusCounts[constants.BookingStatusPending],
		CancelledBookings: statusCounts[constants.BookingStatusCancelled],
		TotalPlaces:       len(places),
		TotalItems:        len(items),
		RevenueByMonth:    []dto.MonthRevenue{},
		BookingsByStatus:  []dto.StatusCount{},
		RevenueByPlace:    []dto.PlaceRevenue{},
	}

	for _, p := range places {
		if p.IsActive {
			resp.ActivePlaces++
		}
		resp.MaxDailyRevenue += p.Price
	}
	for _, it := range items {
		if it.IsActive {
			resp.ActiveItems++
		}
	}

	if len(confirmed) > 0 {
		resp.AvgBookingValue = totalRevenue / float64(len(confirmed))
	}
	if len(bookings) > 0 {
		resp.AvgGuests = totalGuests / float64(len(bookings))
	}
	if len(places) > 0 {
		resp.AvgPricePerNight = resp.MaxDailyRevenue / float64(len(places))
	}

	// Revenue per month, keyed on the start date, falling back to createdAt.
	monthIndex := map[string]int{}
	for _, b := range confirmed {
		d := b.CreatedAt
		if b.StartDate != nil {
			d = *b.StartDate
		}
		label := fmt.Sprintf("%s %d", germanShortMonths[d.Month()-1], d.Year())
		if i, ok := monthIndex[label]; ok {
			resp.RevenueByMonth[i].Revenue += b.TotalPrice
		} else {
			monthIndex[label] = len(resp.RevenueByMonth)
			resp.RevenueByMonth = append(resp.RevenueByMonth, dto.MonthRevenue{Month: label, Revenue: b.TotalPrice})
		}
	}

	for _, sd := range statusDisplay {
		if n := statusCounts[sd.Status]; n > 0 {
			resp.BookingsByStatus = append(resp.BookingsByStatus, dto.StatusCount{
				Name:  sd.Name,
				Value: n,
				Color: sd.Color,
			})
		}
	}

	for _, p := range places {
		var revenue float64
		var count int
		for _, b := range confirmed {
			if b.CampingPlaceID == p.ID {
				revenue += b.TotalPrice
				count++
			}
		}
		resp.RevenueByPlace = append(resp.RevenueByPlace, dto.PlaceRevenue{
			Name:     p.Name,
			Revenue:  revenue,
			Bookings: count,
		})
	}
	sort.SliceStable(resp.RevenueByPlace, func(i, j int) bool {
		return resp.RevenueByPlace[i].Revenue > resp.RevenueByPlace[j].Revenue
	})
	if len(resp.RevenueByPlace) > 5 {
		resp.RevenueByPlace = resp.RevenueByPlace[:5]
	}

	return &resp, nil
}
