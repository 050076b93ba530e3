package models

// Nobody is the partner assigned to the odd-one-out when the
// participant count is odd.
const Nobody = "Nobody"

// Request types

type AddParticipantRequest struct {
	Name string `json:"name"`
}

// Response types

type ListParticipantsResponse struct {
	Participants []Participant `json:"participants"`
}

type AddParticipantResponse struct {
	Participant  Participant   `json:"participant"`
	Participants []Participant `json:"participants"`
}

// Pair is one id-keyed assignment. For the odd-one-out ReceiverID is
// nil and ReceiverName is Nobody.
type Pair struct {
	GiverID      int64  `json:"giver_id"`
	GiverName    string `json:"giver_name"`
	ReceiverID   *int64 `json:"receiver_id,omitempty"`
	ReceiverName string `json:"receiver_name"`
}

type GenerateMatchesResponse struct {
	RunID     string      `json:"run_id"`
	Matches   MatchResult `json:"matches"`
	Pairs     []Pair      `json:"pairs"`
	OddOneOut *string     `json:"odd_one_out,omitempty"`
}

// Domain types

type Participant struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MatchResult maps a participant name to the partner name, or to Nobody.
// Participants sharing a name collide; use the id-keyed pairs when
// names are not unique.
type MatchResult map[string]string

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
