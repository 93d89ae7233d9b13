package domain

// SimilarUser is one record from the externally computed similarity
// provider: a peer with overlapping taste, with the pets they liked and
// passed on. This core consumes these records; it never derives them.
type SimilarUser struct {
	UserID       string   `json:"user_id" db:"user_id"`
	Similarity   float64  `json:"similarity" db:"similarity"`
	CommonLikes  []string `json:"common_likes" db:"common_likes"`
	CommonPasses []string `json:"common_passes" db:"common_passes"`
}

// StaticPreferences are explicitly declared owner tastes, as opposed to the
// implicit ones the weight learner infers.
type StaticPreferences struct {
	FavoriteBreeds        []string `json:"favorite_breeds"`
	FavoritePersonalities []string `json:"favorite_personalities"`
}
