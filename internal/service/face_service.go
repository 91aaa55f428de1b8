package service

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/jengzang/campus-security-backend-go/internal/faceapi"
	"github.com/jengzang/campus-security-backend-go/internal/models"
)

const (
	// One bounded retry before giving up on the external service
	faceRetryAttempts = 1

	demoFaceCount      = 20
	demoIdentifiedRate = 0.7
)

// demoPersonPool mirrors the identities the demo fallback draws from.
// Identified faces always carry a known ID so the identified flag stays
// consistent with the person_id contract.
var demoPersonPool = []string{"STU00001", "STU00002", "STU00003", "STU00005"}

// FaceService handles face recognition processing with a synthetic
// fallback: when the external service is unreachable the caller still
// gets results, flagged as degraded, never a hard failure.
type FaceService struct {
	client *faceapi.Client
	rng    *rand.Rand
	now    func() time.Time
}

// NewFaceService creates a new face service
func NewFaceService(client *faceapi.Client) *FaceService {
	return &FaceService{
		client: client,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
	}
}

// Process relays files to the face recognition service, retrying once on
// failure. On exhaustion it substitutes synthetic demo results. A
// cancelled context (superseded upload) stops the retry loop early.
func (s *FaceService) Process(ctx context.Context, files []faceapi.File) *models.FaceRecognitionSummary {
	var lastErr error
	for attempt := 0; attempt <= faceRetryAttempts; attempt++ {
		summary, err := s.client.ProcessFiles(ctx, files)
		if err == nil {
			return summary
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}

	log.Printf("Face recognition service unavailable, serving demo results: %v", lastErr)
	return s.demoResults()
}

// AddPerson enrolls a person in the face database. Unlike Process there
// is no meaningful synthetic substitute, so failures propagate.
func (s *FaceService) AddPerson(ctx context.Context, personID string, images []faceapi.File) (*models.AddPersonResult, error) {
	result, err := s.client.AddPerson(ctx, personID, images)
	if err != nil {
		return nil, fmt.Errorf("failed to add person %s: %w", personID, err)
	}
	return result, nil
}

// DetectDuplicates runs a duplicate identity scan in the face database
func (s *FaceService) DetectDuplicates(ctx context.Context) (*models.DuplicateReport, error) {
	report, err := s.client.DetectDuplicates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to detect duplicates: %w", err)
	}
	return report, nil
}

// demoResults synthesizes a plausible recognition run so the dashboard
// stays usable in degraded mode
func (s *FaceService) demoResults() *models.FaceRecognitionSummary {
	summary := &models.FaceRecognitionSummary{
		TotalFaces: demoFaceCount,
		Degraded:   true,
	}

	now := s.now()
	for i := 0; i < demoFaceCount; i++ {
		identified := s.rng.Float64() < demoIdentifiedRate

		personID := models.PersonUnknown
		confidence := 0.3 + s.rng.Float64()*0.3
		if identified {
			personID = demoPersonPool[s.rng.Intn(len(demoPersonPool))]
			confidence = 0.7 + s.rng.Float64()*0.25
		}

		summary.Faces = append(summary.Faces, models.FaceRecognitionResult{
			FaceID:      fmt.Sprintf("FACE_%d", i+1),
			PersonID:    personID,
			Confidence:  confidence,
			Timestamp:   now.Add(-time.Duration(s.rng.Float64() * float64(time.Hour))),
			FrameNumber: s.rng.Intn(1000),
			Identified:  identified,
		})

		if identified {
			summary.Identified++
		} else {
			summary.Unknown++
		}
	}

	return summary
}
