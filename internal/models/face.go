package models

import "time"

// PersonUnknown is the literal person_id the face service uses for
// unidentified faces
const PersonUnknown = "Unknown"

// FaceRecognitionResult represents one detected face from the external
// face recognition service
type FaceRecognitionResult struct {
	FaceID      string    `json:"face_id"`
	PersonID    string    `json:"person_id"` // Known ID or "Unknown"
	Confidence  float64   `json:"confidence"` // 0-1
	Timestamp   time.Time `json:"timestamp"`
	FrameNumber int       `json:"frame_number"`
	Identified  bool      `json:"identified"` // True iff PersonID != "Unknown"
}

// FaceRecognitionSummary represents the full response of a processing run
type FaceRecognitionSummary struct {
	TotalFaces int                     `json:"total_faces"`
	Identified int                     `json:"identified"`
	Unknown    int                     `json:"unknown"`
	Faces      []FaceRecognitionResult `json:"faces"`

	// Degraded is set when the external service was unreachable and the
	// results are synthetic demo data
	Degraded bool `json:"degraded,omitempty"`
}

// AddPersonResult represents the face database response after enrolling
// a person's images
type AddPersonResult struct {
	EmbeddingsCount int `json:"embeddings_count"`
}

// DuplicatePair is one pair of suspected duplicate identities
type DuplicatePair struct {
	Person1    string  `json:"person1"`
	Person2    string  `json:"person2"`
	Similarity float64 `json:"similarity"`
}

// DuplicateReport represents the face database duplicate scan response
type DuplicateReport struct {
	Duplicates []DuplicatePair `json:"duplicates"`
}
