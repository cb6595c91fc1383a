package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chewxy/math32"

	"github.com/ChadNetwig/OpenGL-3DScene/config"
	"github.com/ChadNetwig/OpenGL-3DScene/core"
	"github.com/ChadNetwig/OpenGL-3DScene/geometry"
	"github.com/ChadNetwig/OpenGL-3DScene/internal/opengl"
	"github.com/ChadNetwig/OpenGL-3DScene/math"
	"github.com/ChadNetwig/OpenGL-3DScene/meshio"
	"github.com/ChadNetwig/OpenGL-3DScene/scene"
)

// Projection clip planes and the fixed orthographic volume the P key
// switches to.
const (
	perspectiveNear = 0.1
	perspectiveFar  = 100.0
	orthoHalfExtent = 5.0
	orthoNear       = 2.0
	orthoFar        = 100.0
)

func main() {
	configPath := flag.String("config", "viewer.yaml", "path to the viewer configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		log.Fatalf("viewer: %v", err)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	window, err := core.NewWindow(core.WindowConfig{
		Width:        cfg.Window.Width,
		Height:       cfg.Window.Height,
		Title:        cfg.Window.Title,
		Resizable:    true,
		VSync:        cfg.Window.VSync,
		CaptureMouse: true,
	})
	if err != nil {
		return err
	}
	defer window.Destroy()

	renderer, err := opengl.NewRenderer()
	if err != nil {
		return err
	}
	defer renderer.Destroy()

	fbWidth, fbHeight := window.GetFramebufferSize()
	renderer.SetViewport(fbWidth, fbHeight)
	window.SetFramebufferSizeCallback(func(width, height int) {
		renderer.SetViewport(width, height)
	})

	// Textures: a failed load falls back to flat gray so the scene still
	// renders.
	textures := loadSceneTextures(cfg.Textures)
	defer func() {
		for _, tex := range textures {
			opengl.DeleteTexture(tex)
		}
	}()

	// Generated primitives
	canMesh := scene.FromMeshData("Can", geometry.NewCylinder(0.27, 0.27, 0.9, 36, 1, true).Data())
	ballMesh := scene.FromMeshData("Ball", geometry.NewSphere(0.4, 36, 18, true).Data())

	// The scene props share a 30 degree tilt about a near-vertical axis so
	// the arrangement reads in depth from the start position.
	sceneTilt := math.QuaternionFromAxisAngle(
		math.Vec3{X: 0.3, Y: 1, Z: 0}.Normalize(), radians(30))

	plane := planeMesh()
	plane.Material = scene.NewTexturedMaterial("plane", textures["plane"])
	plane.Transform.Scale = math.Vec3{X: 2.5, Y: 2.5, Z: 2.5}
	plane.Transform.Rotation = sceneTilt

	triCase := triCaseMesh()
	triCase.Material = scene.NewTexturedMaterial("case", textures["case"])
	triCase.Transform.Scale = math.Vec3{X: 2, Y: 2, Z: 2}
	triCase.Transform.Rotation = sceneTilt
	triCase.Transform.Position = math.Vec3{X: -1, Y: -0.54, Z: 4}

	logo := triCaseLogoMesh()
	logo.Material = scene.NewTexturedMaterial("logo", textures["logo"])
	logo.Transform = triCase.Transform

	can := canMesh
	can.Material = scene.NewTexturedMaterial("cylinder", textures["cylinder"])
	can.Transform.Scale = math.Vec3{X: 2, Y: 2, Z: 2}
	can.Transform.Rotation = math.QuaternionFromAxisAngle(math.Vec3{X: 1}, radians(99))
	can.Transform.Position = math.Vec3{X: 1, Y: 0.75, Z: 1}

	ball := ballMesh
	ball.Material = scene.NewTexturedMaterial("sphere", textures["sphere"])
	ball.Transform.Rotation = math.QuaternionFromAxisAngle(math.Vec3{X: 1}, radians(90))
	ball.Transform.Position = math.Vec3{X: 1, Y: -0.24, Z: 4.2}

	notes := scene.CreateCube(1)
	notes.Name = "StickyNotes"
	notes.Material = scene.NewTexturedMaterial("cube", textures["cube"])
	notes.Transform.Scale = math.Vec3{X: 1, Y: 0.1, Z: 1}
	notes.Transform.Rotation = sceneTilt
	notes.Transform.Position = math.Vec3{X: 2.5, Y: -0.31, Z: 2}

	props := []*scene.Mesh{plane, triCase, logo, can, ball, notes}

	// Lights plus their marker cubes
	keyLight := lightFromConfig(cfg.Lighting.Key)
	fillLight := lightFromConfig(cfg.Lighting.Fill)

	keyLamp := scene.CreateCube(1)
	keyLamp.Name = "KeyLamp"
	keyLamp.Material = scene.NewUnlitMaterial("keyLamp", keyLight.ScaledColor())
	keyLamp.Transform.Scale = math.Vec3{X: 0.3, Y: 0.3, Z: 0.3}

	fillLamp := scene.CreateCube(1)
	fillLamp.Name = "FillLamp"
	fillLamp.Material = scene.NewUnlitMaterial("fillLamp", fillLight.ScaledColor())
	fillLamp.Transform.Scale = math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}

	lamps := []*scene.Mesh{keyLamp, fillLamp}

	defer func() {
		for _, m := range props {
			renderer.ReleaseMesh(m)
		}
		for _, m := range lamps {
			renderer.ReleaseMesh(m)
		}
	}()

	// Camera and mouse state
	camera := scene.NewCamera(math.Vec3{
		X: cfg.Camera.Position[0],
		Y: cfg.Camera.Position[1],
		Z: cfg.Camera.Position[2],
	})
	camera.MovementSpeed = cfg.Camera.Speed

	firstMouse := true
	var lastX, lastY float64
	window.SetCursorPosCallback(func(x, y float64) {
		if firstMouse {
			lastX, lastY = x, y
			firstMouse = false
		}
		dx := float32(x - lastX)
		dy := float32(lastY - y) // reversed: screen y grows downward
		lastX, lastY = x, y
		camera.ProcessMouseMove(dx, dy)
	})
	window.SetScrollCallback(func(xoff, yoff float64) {
		camera.ProcessScroll(float32(yoff))
	})

	fmt.Println("Controls: WASD/QE move, mouse look, scroll speed, P projection, Z wireframe, F5 export, ESC quit")

	orthographic := false
	pKeyWasDown := false
	zKeyWasDown := false
	exportKeyWasDown := false

	lastFrame := core.Time()

	for !window.ShouldClose() {
		window.PollEvents()

		now := core.Time()
		deltaTime := float32(now - lastFrame)
		lastFrame = now

		if window.IsKeyPressed(core.KeyEscape) {
			window.SetShouldClose(true)
		}

		processMovement(window, camera, deltaTime)

		// Toggle perspective/orthographic on P press (debounced)
		pDown := window.IsKeyPressed(core.KeyP)
		if pDown && !pKeyWasDown {
			orthographic = !orthographic
			if orthographic {
				fmt.Println("Orthographic view is on")
			} else {
				fmt.Println("Perspective view is on")
			}
		}
		pKeyWasDown = pDown

		// Toggle wireframe on Z press (debounced)
		zDown := window.IsKeyPressed(core.KeyZ)
		if zDown && !zKeyWasDown {
			renderer.SetWireframe(!renderer.IsWireframe())
		}
		zKeyWasDown = zDown

		// Export generated meshes on F5 press (debounced)
		f5Down := window.IsKeyPressed(core.KeyF5)
		if f5Down && !exportKeyWasDown {
			if path, err := exportGenerated(cfg.Export.Dir, canMesh, ballMesh); err != nil {
				fmt.Printf("export failed: %v\n", err)
			} else {
				fmt.Printf("exported generated meshes to %s\n", path)
			}
		}
		exportKeyWasDown = f5Down

		// Key light orbits the scene center about the Y axis
		if cfg.Lighting.OrbitKeyLight {
			spin := math.QuaternionFromAxisAngle(math.Vec3{Y: 1}, cfg.Lighting.OrbitSpeed*deltaTime)
			keyLight.Position = spin.RotateVector(keyLight.Position)
		}
		keyLamp.Transform.Position = keyLight.Position
		fillLamp.Transform.Position = fillLight.Position

		width, height := window.GetFramebufferSize()
		frame := &opengl.FrameContext{
			View:       camera.ViewMatrix(),
			Projection: projectionMatrix(orthographic, cfg.Camera.FOV, width, height),
			CameraPos:  camera.Position,
			Lights:     [opengl.LightCount]scene.Light{keyLight, fillLight},
		}

		renderer.BeginFrame(core.ColorBlack, frame)
		for _, m := range props {
			renderer.DrawMesh(m, frame)
		}
		for _, m := range lamps {
			renderer.DrawMesh(m, frame)
		}

		window.SwapBuffers()
	}

	return nil
}

// processMovement polls the held movement keys every frame; held keys rather
// than key events so diagonal movement composes.
func processMovement(window *core.Window, camera *scene.Camera, deltaTime float32) {
	if window.IsKeyPressed(core.KeyW) {
		camera.ProcessKeyboard(scene.CameraForward, deltaTime)
	}
	if window.IsKeyPressed(core.KeyS) {
		camera.ProcessKeyboard(scene.CameraBackward, deltaTime)
	}
	if window.IsKeyPressed(core.KeyA) {
		camera.ProcessKeyboard(scene.CameraLeft, deltaTime)
	}
	if window.IsKeyPressed(core.KeyD) {
		camera.ProcessKeyboard(scene.CameraRight, deltaTime)
	}
	if window.IsKeyPressed(core.KeyQ) {
		camera.ProcessKeyboard(scene.CameraUp, deltaTime)
	}
	if window.IsKeyPressed(core.KeyE) {
		camera.ProcessKeyboard(scene.CameraDown, deltaTime)
	}
}

func projectionMatrix(orthographic bool, fovDegrees float32, width, height int) math.Mat4 {
	if orthographic {
		return math.Mat4Orthographic(
			-orthoHalfExtent, orthoHalfExtent,
			-orthoHalfExtent, orthoHalfExtent,
			orthoNear, orthoFar)
	}
	aspect := float32(width) / float32(height)
	return math.Mat4Perspective(radians(fovDegrees), aspect, perspectiveNear, perspectiveFar)
}

// loadSceneTextures loads every configured texture, substituting a gray
// fallback for any file that fails, and uploads them all.
func loadSceneTextures(cfg config.TextureConfig) map[string]*scene.Texture {
	paths := map[string]string{
		"plane":    cfg.Plane,
		"case":     cfg.Case,
		"logo":     cfg.Logo,
		"cylinder": cfg.Cylinder,
		"sphere":   cfg.Sphere,
		"cube":     cfg.Cube,
	}

	textures := make(map[string]*scene.Texture, len(paths))
	for name, file := range paths {
		tex, err := scene.LoadTexture(filepath.Join(cfg.Dir, file))
		if err != nil {
			fmt.Printf("texture %s: %v (using fallback)\n", name, err)
			tex = scene.NewSolidTexture(name, 128, 128, 128, 255)
		}
		if err := opengl.UploadTexture(tex); err != nil {
			fmt.Printf("upload %s: %v\n", name, err)
		}
		textures[name] = tex
	}
	return textures
}

// exportGenerated writes the generated primitives to a timestamped glTF
// file under dir.
func exportGenerated(dir string, meshes ...*scene.Mesh) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("meshes-%s.gltf", time.Now().Format("20060102-150405")))
	if err := meshio.ExportGLTF(path, meshes...); err != nil {
		return "", err
	}
	return path, nil
}

func lightFromConfig(cfg config.LightConfig) scene.Light {
	return scene.Light{
		Position:  math.Vec3{X: cfg.Position[0], Y: cfg.Position[1], Z: cfg.Position[2]},
		Color:     core.Color{R: cfg.Color[0], G: cfg.Color[1], B: cfg.Color[2], A: 1},
		Intensity: cfg.Intensity,
	}
}

func radians(degrees float32) float32 {
	return degrees * math32.Pi / 180
}
