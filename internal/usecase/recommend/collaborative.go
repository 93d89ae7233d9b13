package recommend

import "github.com/pawfectmatch/pawfectmatch-backend/internal/domain"

const neutralCollaborativeScore = 50

// Votes from similar users: a like endorses the candidate fully, a pass
// still carries a little signal (the peer at least saw appeal enough to be
// shown the profile).
const (
	likeVoteScore = 100
	passVoteScore = 20
)

// collaborativeScore averages the similar users' verdicts on the candidate,
// weighted by how similar each peer is. Peers without an opinion on this
// candidate are ignored; no opinions at all yields the neutral score.
func collaborativeScore(candidateID string, similarUsers []domain.SimilarUser) float64 {
	var weightedSum, similaritySum float64

	for _, peer := range similarUsers {
		if peer.Similarity <= 0 {
			continue
		}
		switch {
		case containsID(peer.CommonLikes, candidateID):
			weightedSum += likeVoteScore * peer.Similarity
			similaritySum += peer.Similarity
		case containsID(peer.CommonPasses, candidateID):
			weightedSum += passVoteScore * peer.Similarity
			similaritySum += peer.Similarity
		}
	}

	if similaritySum == 0 {
		return neutralCollaborativeScore
	}
	return clamp(weightedSum/similaritySum, 0, 100)
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
