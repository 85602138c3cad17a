package services

import (
	"sort"
	"strings"
	"sync"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"

	"campsite/dto"
	"campsite/errors"
	"campsite/models"
)

// SearchService ranks camping places against a free-text query: accent
// folding, bag-of-letters matching on locations and word similarity on
// name/amenities.
type SearchService struct {
	db *gorm.DB
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db}
}

func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// uniqueLocations collects the normalized location values for the matcher.
func uniqueLocations(places []models.CampingPlace) []string {
	seen := make(map[string]bool)
	for _, p := range places {
		if p.Location != "" {
			seen[normalizeInput(p.Location)] = true
		}
	}

	list := make([]string, 0, len(seen))
	for v := range seen {
		list = append(list, v)
	}
	return list
}

func scorePlace(query string, place models.CampingPlace, cmLocation *closestmatch.ClosestMatch) int {
	score := 0

	name := normalizeInput(place.Name)
	if strings.Contains(query, name) || strings.Contains(name, query) || calculateSimilarity(query, name) > 0.7 {
		score += 20
	}

	if cmLocation.Closest(query) == normalizeInput(place.Location) {
		score += 13
	}

	maxAmenityScore := 12
	amenityScore := 0
	for _, amenity := range strings.Split(place.Amenities, ",") {
		normalized := normalizeInput(amenity)
		if normalized == "" {
			continue
		}
		if strings.Contains(query, normalized) || calculateSimilarity(query, normalized) > 0.7 {
			amenityScore += 4
			if amenityScore >= maxAmenityScore {
				break
			}
		}
	}
	score += amenityScore

	return score
}

// Search returns active places with a positive score, best first. Scoring
// runs concurrently per place.
func (s *SearchService) Search(query string) ([]dto.ScoredCampingPlace, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.NewBadRequest(errors.ErrCodeRequiredField, "Feld 'q' ist erforderlich.")
	}

	var places []models.CampingPlace
	if err := s.db.Where("is_active = ?", true).Find(&places).Error; err != nil {
		return nil, errors.NewInternal(err)
	}
	if len(places) == 0 {
		return []dto.ScoredCampingPlace{}, nil
	}

	normalizedQuery := normalizeInput(query)
	cmLocation := createMatcher(uniqueLocations(places))

	scoreCh := make(chan dto.ScoredCampingPlace, len(places))
	var wg sync.WaitGroup

	for _, place := range places {
		wg.Add(1)
		go func(place models.CampingPlace) {
			defer wg.Done()
			score := scorePlace(normalizedQuery, place, cmLocation)
			if score > 0 {
				scoreCh <- dto.ScoredCampingPlace{
					CampingPlace: place,
					Score:        score,
				}
			}
		}(place)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	scored := make([]dto.ScoredCampingPlace, 0, len(places))
	for sp := range scoreCh {
		scored = append(scored, sp)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored, nil
}
