package main

import (
	"errors"
	"log"
	"os"
	"runtime"

	"github.com/felipepegoraro/opengl-mpu6050/glfwcontext"
	"github.com/felipepegoraro/opengl-mpu6050/options"
	"github.com/felipepegoraro/opengl-mpu6050/renderer"
	"github.com/felipepegoraro/opengl-mpu6050/seriallink"
	"github.com/felipepegoraro/opengl-mpu6050/telemetry"
	"github.com/felipepegoraro/opengl-mpu6050/viewer"
)

const (
	defaultConfigPath = "./cubeview.yaml"
	configEnv         = "CUBEVIEW_CONFIG"

	exitOK                = 0
	exitFailure           = 1
	exitDeviceUnavailable = -1
)

func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func configPath() string {
	if p := os.Getenv(configEnv); p != "" {
		return p
	}
	return defaultConfigPath
}

// run returns the process exit status once every acquired resource is released.
func run() int {
	path := configPath()
	opts, err := options.LoadOrDefault(path)
	if err != nil {
		log.Printf("config %s: %v", path, err)
		return exitFailure
	}

	link, err := seriallink.Open(opts.Serial)
	if err != nil {
		log.Printf("%v", err)
		if errors.Is(err, seriallink.ErrDeviceUnavailable) {
			return exitDeviceUnavailable
		}
		return exitFailure
	}
	defer link.Close()
	log.Printf("serial %s opened at %d baud", link.Name(), opts.Serial.Baud)

	if err := glfwcontext.InitGraphics(); err != nil {
		log.Printf("%v", err)
		return exitFailure
	}
	defer glfwcontext.TerminateGraphics()

	ctx, err := glfwcontext.New(opts.Window)
	if err != nil {
		log.Printf("%v", err)
		return exitFailure
	}
	defer ctx.Shutdown()

	r, err := renderer.NewRenderer(ctx, opts.Render)
	if err != nil {
		log.Printf("Failed to create renderer: %v", err)
		return exitFailure
	}
	defer r.Shutdown()

	var publisher viewer.SamplePublisher
	if opts.MQTT.Broker != "" {
		p, err := telemetry.Connect(opts.MQTT)
		if err != nil {
			log.Printf("telemetry disabled: %v", err)
		} else {
			defer p.Close()
			publisher = p
		}
	}

	viewer.New(link, r, ctx, publisher).Run()
	return exitOK
}
