package dto

import "campsite/models"

// ScoredCampingPlace pairs a search hit with its relevance score.
type ScoredCampingPlace struct {
	CampingPlace models.CampingPlace `json:"campingPlace"`
	Score        int                 `json:"score"`
}
