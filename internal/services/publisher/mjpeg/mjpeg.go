package mjpeg

import (
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"gocv.io/x/gocv"

	"image"
	"image/color"
	"secsys-worker-go/internal/config"
	"secsys-worker-go/internal/helpers"
	"secsys-worker-go/internal/models"
)

type Publisher struct {
	cfg        *config.Config
	jpegMutex  sync.RWMutex
	latestJPEG map[string][]byte

	// Each HTTP streamer gets its own notify channel so one viewer
	// disconnecting never touches a channel another viewer waits on
	subMutex    sync.RWMutex
	subscribers map[string]map[chan struct{}]struct{}
}

func NewPublisher(cfg *config.Config) (*Publisher, error) {
	p := &Publisher{
		cfg:         cfg,
		latestJPEG:  make(map[string][]byte),
		subscribers: make(map[string]map[chan struct{}]struct{}),
	}

	return p, nil
}

func (p *Publisher) PublishFrame(frame *models.ProcessedFrame) error {
	if err := p.updateLatestJPEG(frame); err != nil {
		return err
	}

	p.notifyStreamers(frame.CameraID)
	return nil
}

// Latest returns a copy of the most recent JPEG for a camera. The
// second return is false when no frame has been published yet.
func (p *Publisher) Latest(cameraID string) ([]byte, bool) {
	p.jpegMutex.RLock()
	defer p.jpegMutex.RUnlock()

	buf, ok := p.latestJPEG[cameraID]
	if !ok || len(buf) == 0 {
		return nil, false
	}
	out := make([]byte, len(buf))
	copy(out, buf)
	return out, true
}

func (p *Publisher) updateLatestJPEG(frame *models.ProcessedFrame) error {
	jpeg, err := helpers.ConvertFrameToJPEG(frame.Data, frame.Width, frame.Height, p.cfg.OutputQuality)
	if err != nil {
		return fmt.Errorf("failed to encode JPEG: %w", err)
	}

	p.jpegMutex.Lock()
	p.latestJPEG[frame.CameraID] = jpeg
	p.jpegMutex.Unlock()
	return nil
}

// notifyStreamers wakes every subscriber of a camera. Sends are
// non-blocking and happen under the read lock, so a subscriber being
// removed concurrently is never signalled after removal.
func (p *Publisher) notifyStreamers(cameraID string) {
	p.subMutex.RLock()
	defer p.subMutex.RUnlock()

	for notify := range p.subscribers[cameraID] {
		select {
		case notify <- struct{}{}:
		default:
		}
	}
}

func (p *Publisher) subscribe(cameraID string) chan struct{} {
	notify := make(chan struct{}, 1)

	p.subMutex.Lock()
	subs, exists := p.subscribers[cameraID]
	if !exists {
		subs = make(map[chan struct{}]struct{})
		p.subscribers[cameraID] = subs
	}
	subs[notify] = struct{}{}
	p.subMutex.Unlock()

	return notify
}

// unsubscribe removes a streamer's channel. The channel is never
// closed, it just becomes unreachable and is garbage collected.
func (p *Publisher) unsubscribe(cameraID string, notify chan struct{}) {
	p.subMutex.Lock()
	defer p.subMutex.Unlock()

	if subs, exists := p.subscribers[cameraID]; exists {
		delete(subs, notify)
		if len(subs) == 0 {
			delete(p.subscribers, cameraID)
		}
	}
}

func (p *Publisher) StreamMJPEGHTTP(w http.ResponseWriter, r *http.Request, cameraID string) {
	boundary := "frame"
	w.Header().Set("Content-Type", "multipart/x-mixed-replace; boundary="+boundary)
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	notify := p.subscribe(cameraID)
	defer p.unsubscribe(cameraID, notify)

	writePart := func(jpeg []byte) bool {
		if _, err := io.WriteString(w, "--"+boundary+"\r\n"); err != nil {
			return false
		}
		if _, err := io.WriteString(w, "Content-Type: image/jpeg\r\n"); err != nil {
			return false
		}
		if _, err := io.WriteString(w, fmt.Sprintf("Content-Length: %d\r\n\r\n", len(jpeg))); err != nil {
			return false
		}
		if _, err := w.Write(jpeg); err != nil {
			return false
		}
		if _, err := io.WriteString(w, "\r\n"); err != nil {
			return false
		}
		flusher.Flush()
		return true
	}

	first, ok := p.Latest(cameraID)
	if !ok {
		placeholder := gocv.NewMatWithSize(360, 640, gocv.MatTypeCV8UC3)
		defer placeholder.Close()

		placeholder.SetTo(gocv.Scalar{Val1: 64, Val2: 64, Val3: 64, Val4: 0})

		textColor := color.RGBA{R: 255, G: 255, B: 255, A: 255}
		gocv.PutText(&placeholder, fmt.Sprintf("Camera: %s", cameraID),
			image.Pt(20, 180), gocv.FontHersheySimplex, 1.0, textColor, 2)
		gocv.PutText(&placeholder, "Initializing...",
			image.Pt(20, 220), gocv.FontHersheySimplex, 0.8, textColor, 2)

		buf, err := gocv.IMEncodeWithParams(gocv.JPEGFileExt, placeholder, []int{gocv.IMWriteJpegQuality, p.cfg.OutputQuality})
		if err == nil {
			first = make([]byte, len(buf.GetBytes()))
			copy(first, buf.GetBytes())
			buf.Close()
		}
	}
	if len(first) > 0 {
		if !writePart(first) {
			return
		}
	}

	keepaliveTicker := time.NewTicker(2 * time.Second)
	defer keepaliveTicker.Stop()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-notify:
			if buf, ok := p.Latest(cameraID); ok {
				if !writePart(buf) {
					return
				}
			}
		case <-keepaliveTicker.C:
			if buf, ok := p.Latest(cameraID); ok {
				if !writePart(buf) {
					return
				}
			}
		}
	}
}

func (p *Publisher) Shutdown() {
	log.Info().Msg("MJPEG Publisher shutting down")
}
