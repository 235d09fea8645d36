package renderer

import (
	"fmt"
	"io"
	"log"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// VideoFrame is a single rendered frame's pixels, ready for encoding.
type VideoFrame struct {
	Pixels []byte
	PTS    int64
}

// OffscreenRenderer is a colour + depth framebuffer the recorder renders into.
type OffscreenRenderer struct {
	fbo               uint32
	textureID         uint32
	depthRenderbuffer uint32
	width             int
	height            int
}

const numBuffers = 3 // frames in flight between the render loop and the encoder

func NewOffscreenRenderer(width, height int) (*OffscreenRenderer, error) {
	or := &OffscreenRenderer{width: width, height: height}

	gl.GenFramebuffers(1, &or.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, or.fbo)
	gl.GenTextures(1, &or.textureID)
	gl.BindTexture(gl.TEXTURE_2D, or.textureID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, or.textureID, 0)
	gl.GenRenderbuffers(1, &or.depthRenderbuffer)
	gl.BindRenderbuffer(gl.RENDERBUFFER, or.depthRenderbuffer)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, int32(width), int32(height))
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, or.depthRenderbuffer)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		or.Destroy()
		return nil, fmt.Errorf("offscreen fbo is not complete (status 0x%x)", status)
	}
	return or, nil
}

func (or *OffscreenRenderer) Destroy() {
	gl.DeleteFramebuffers(1, &or.fbo)
	gl.DeleteTextures(1, &or.textureID)
	gl.DeleteRenderbuffers(1, &or.depthRenderbuffer)
}

// Bind directs rendering into the offscreen framebuffer.
func (or *OffscreenRenderer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, or.fbo)
}

// ReadPixels reads the framebuffer as top-down RGBA rows.
func (or *OffscreenRenderer) ReadPixels() []byte {
	pixels := make([]byte, or.width*or.height*4)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, or.fbo)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(or.width), int32(or.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	// GL returns the bottom row first.
	flipRows(pixels, or.width*4, or.height)
	return pixels
}

// flipRows reverses the order of height rows of stride bytes in place.
func flipRows(pix []byte, stride, height int) {
	tmp := make([]byte, stride)
	for top, bottom := 0, height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := pix[top*stride : (top+1)*stride]
		b := pix[bottom*stride : (bottom+1)*stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}

// encoderArgs returns the ffmpeg arguments for raw RGBA frames on stdin.
func encoderArgs(width, height, fps int) (inputArgs ffmpeg.KwArgs, outputArgs ffmpeg.KwArgs) {
	inputArgs = ffmpeg.KwArgs{
		"format":  "rawvideo",
		"pix_fmt": "rgba",
		"s":       fmt.Sprintf("%dx%d", width, height),
		"r":       fps,
	}
	outputArgs = ffmpeg.KwArgs{
		"c:v":     "libx264",
		"pix_fmt": "yuv420p",
	}
	return
}

// runEncoder is the consumer. It pipes frames from frameChan into ffmpeg.
func runEncoder(outputFile, ffmpegPath string, width, height, fps int, frameChan <-chan *VideoFrame, doneChan chan<- error) {
	pipeReader, pipeWriter := io.Pipe()
	inputArgs, outputArgs := encoderArgs(width, height, fps)

	ffmpegCmd := ffmpeg.Input("pipe:", inputArgs).
		Output(outputFile, outputArgs).
		OverWriteOutput().WithInput(pipeReader).ErrorToStdOut()
	if ffmpegPath != "" {
		ffmpegCmd = ffmpegCmd.SetFfmpegPath(ffmpegPath)
	}

	errc := make(chan error, 1)
	go func() {
		err := ffmpegCmd.Run()
		// Unblock the writer if ffmpeg exits early.
		pipeReader.CloseWithError(io.ErrClosedPipe)
		errc <- err
	}()

	var writeErr error
	for frame := range frameChan {
		if writeErr != nil {
			continue
		}
		if _, err := pipeWriter.Write(frame.Pixels); err != nil {
			log.Printf("Error writing frame %d to ffmpeg: %v", frame.PTS, err)
			writeErr = err
		}
	}
	pipeWriter.Close()

	if err := <-errc; err != nil {
		doneChan <- fmt.Errorf("ffmpeg failed: %w", err)
		return
	}
	doneChan <- writeErr
}

// RunOffscreen renders duration*fps fixed-step frames of lesson into an FBO
// and encodes them to the configured output file.
func (r *Renderer) RunOffscreen(lesson Lesson) error {
	width, height := *r.opts.Width, *r.opts.Height
	fps := *r.opts.FPS

	or, err := NewOffscreenRenderer(width, height)
	if err != nil {
		return fmt.Errorf("failed to create offscreen renderer: %w", err)
	}
	defer or.Destroy()

	if err := lesson.Init(r.env()); err != nil {
		return fmt.Errorf("failed to initialize lesson: %w", err)
	}
	defer lesson.Destroy()

	log.Printf("Recording %s at %dx%d, %d fps", *r.opts.RecordFile, width, height, fps)
	frameChan := make(chan *VideoFrame, numBuffers)
	encoderDoneChan := make(chan error, 1)
	go runEncoder(*r.opts.RecordFile, *r.opts.FFMPEGPath, width, height, fps, frameChan, encoderDoneChan)

	mask := clearMask(lesson)
	totalFrames := int(*r.opts.Duration * float64(fps))
	timeStep := 1.0 / float64(fps)

	for i := 0; i < totalFrames; i++ {
		f := Frame{
			Time:   float64(i) * timeStep,
			Delta:  timeStep,
			Count:  int64(i),
			Width:  width,
			Height: height,
		}
		if i == 0 {
			f.Delta = 0
		}

		or.Bind()
		r.viewport(width, height)
		lesson.Update(f)
		r.clear(mask)
		lesson.Draw(f)
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

		frameChan <- &VideoFrame{Pixels: or.ReadPixels(), PTS: int64(i)}
	}
	close(frameChan)

	if err := <-encoderDoneChan; err != nil {
		return err
	}
	log.Printf("Successfully recorded %d frames to %s", totalFrames, *r.opts.RecordFile)
	return nil
}
