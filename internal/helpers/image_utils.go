package helpers

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"secsys-worker-go/internal/models"
)

var (
	presentColor = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	absentColor  = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	boxColor     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
)

// IsJPEGData checks if the byte slice contains JPEG data by checking magic bytes
func IsJPEGData(data []byte) bool {
	if len(data) < 2 {
		return false
	}
	// JPEG magic bytes: FF D8
	return data[0] == 0xFF && data[1] == 0xD8
}

// EncodeBGRToJPEG converts BGR raw bytes to JPEG format
func EncodeBGRToJPEG(bgrData []byte, width, height, quality int) ([]byte, error) {
	if len(bgrData) == 0 {
		return nil, fmt.Errorf("empty BGR data")
	}
	if width <= 0 || height <= 0 || width*height*3 != len(bgrData) {
		return nil, fmt.Errorf("BGR data length %d does not match %dx%d", len(bgrData), width, height)
	}

	mat, err := gocv.NewMatFromBytes(height, width, gocv.MatTypeCV8UC3, bgrData)
	if err != nil {
		return nil, fmt.Errorf("failed to create Mat from BGR data: %w", err)
	}
	defer mat.Close()

	buf, err := gocv.IMEncodeWithParams(gocv.JPEGFileExt, mat, []int{gocv.IMWriteJpegQuality, quality})
	if err != nil {
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}
	defer buf.Close()

	b := buf.GetBytes()
	jpegCopy := make([]byte, len(b))
	copy(jpegCopy, b)
	return jpegCopy, nil
}

// ConvertFrameToJPEG converts frame data to JPEG, passing through data
// that is already JPEG encoded.
func ConvertFrameToJPEG(frameData []byte, width, height, quality int) ([]byte, error) {
	if len(frameData) == 0 {
		return nil, fmt.Errorf("empty frame data")
	}

	if IsJPEGData(frameData) {
		return frameData, nil
	}

	return EncodeBGRToJPEG(frameData, width, height, quality)
}

// AnnotateFrame draws detection boxes and a presence banner onto a raw
// BGR frame and returns the result as JPEG bytes.
func AnnotateFrame(frame *models.RawFrame, detections []models.Detection, personPresent bool, quality int) ([]byte, error) {
	mat, err := gocv.NewMatFromBytes(frame.Height, frame.Width, gocv.MatTypeCV8UC3, frame.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to create Mat from frame data: %w", err)
	}
	defer mat.Close()

	for _, det := range detections {
		if len(det.BBox) != 4 {
			continue
		}
		rect := image.Rect(int(det.BBox[0]), int(det.BBox[1]), int(det.BBox[2]), int(det.BBox[3]))
		gocv.Rectangle(&mat, rect, boxColor, 2)
		label := fmt.Sprintf("%s %.2f", det.Label, det.Confidence)
		gocv.PutText(&mat, label, image.Pt(rect.Min.X, rect.Min.Y-5),
			gocv.FontHersheySimplex, 0.5, boxColor, 1)
	}

	banner := "No person"
	bannerColor := absentColor
	if personPresent {
		banner = "Person detected"
		bannerColor = presentColor
	}
	gocv.PutText(&mat, banner, image.Pt(10, 30),
		gocv.FontHersheySimplex, 1.0, bannerColor, 2)

	buf, err := gocv.IMEncodeWithParams(gocv.JPEGFileExt, mat, []int{gocv.IMWriteJpegQuality, quality})
	if err != nil {
		return nil, fmt.Errorf("failed to encode annotated frame: %w", err)
	}
	defer buf.Close()

	b := buf.GetBytes()
	jpegCopy := make([]byte, len(b))
	copy(jpegCopy, b)
	return jpegCopy, nil
}
