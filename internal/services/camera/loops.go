package camera

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"secsys-worker-go/internal/models"
	"secsys-worker-go/internal/services/postprocessing"
)

const maxConsecutiveReadErrors = 10

// runDetectionLoop reads frames, runs detection and feeds the presence
// tracker. Detection errors count the frame as person-absent so a dead
// model server cannot hold an alert open forever.
func (cl *CameraLifecycle) runDetectionLoop(ctx context.Context, reader FrameReader, tracker *postprocessing.PresenceTracker) error {
	consecutiveErrors := 0

	for cl.isRunning() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		frame, err := reader.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			consecutiveErrors++
			cl.camera.RecordError(err.Error())
			log.Warn().
				Err(err).
				Str("camera_id", cl.camera.ID).
				Int("consecutive_errors", consecutiveErrors).
				Msg("Failed to read frame")

			if consecutiveErrors >= maxConsecutiveReadErrors {
				return fmt.Errorf("too many consecutive frame read errors (%d)", consecutiveErrors)
			}

			time.Sleep(100 * time.Millisecond)
			continue
		}

		consecutiveErrors = 0
		cl.camera.RecordFrame(frame.Timestamp)

		cl.processFrame(ctx, frame, tracker)

		// Pace the loop so a fast source does not saturate the model
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(cl.cm.cfg.CycleDelay):
		}
	}

	return nil
}

// processFrame runs one detection cycle for a single frame.
func (cl *CameraLifecycle) processFrame(ctx context.Context, frame *models.RawFrame, tracker *postprocessing.PresenceTracker) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("camera_id", cl.camera.ID).
				Interface("panic", r).
				Msg("Process frame panic recovered")
		}
	}()

	detections, err := cl.cm.pipeline.Detector.Infer(ctx, frame)
	if err != nil {
		// Inference failure is a person-absent frame, not a worker failure
		cl.camera.RecordError(err.Error())
		log.Warn().
			Err(err).
			Str("camera_id", cl.camera.ID).
			Int64("frame_id", frame.FrameID).
			Msg("Inference failed, treating frame as empty")
		detections = nil
	}

	positive := models.PersonPositive(detections, int32(cl.cm.cfg.PersonClassID), float32(cl.cm.cfg.ConfidenceThreshold))
	event := tracker.Update(positive)
	cl.camera.SetActive(tracker.Present())

	switch event {
	case postprocessing.EventOnset:
		log.Info().
			Str("camera_id", cl.camera.ID).
			Int64("frame_id", frame.FrameID).
			Msg("Person presence onset")
		if cl.cm.pipeline.Alerts.HandleOnset(frame) {
			cl.camera.RecordAlert()
		}
	case postprocessing.EventClear:
		log.Info().
			Str("camera_id", cl.camera.ID).
			Int64("frame_id", frame.FrameID).
			Msg("Person presence cleared")
	}

	cl.publishFrame(frame, detections, tracker.Present())
}

// publishFrame annotates the frame and hands it to the live publisher.
func (cl *CameraLifecycle) publishFrame(frame *models.RawFrame, detections []models.Detection, personPresent bool) {
	annotated, err := cl.cm.pipeline.Annotate(frame, detections, personPresent, cl.cm.cfg.OutputQuality)
	if err != nil {
		log.Debug().
			Err(err).
			Str("camera_id", cl.camera.ID).
			Msg("Failed to annotate frame")
		return
	}

	processed := &models.ProcessedFrame{
		CameraID:   frame.CameraID,
		FrameID:    frame.FrameID,
		Data:       annotated,
		Width:      frame.Width,
		Height:     frame.Height,
		Timestamp:  frame.Timestamp,
		Detections: detections,
	}

	if err := cl.cm.pipeline.Publisher.PublishFrame(processed); err != nil {
		log.Error().
			Err(err).
			Str("camera_id", cl.camera.ID).
			Msg("Failed to publish frame")
		cl.camera.RecordError(err.Error())
	}
}
