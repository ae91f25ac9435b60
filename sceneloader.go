package grove

import (
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// A scene description file is a YAML document describing a node tree with
// optional attached resources. It is meant for hand-authored test scenes and
// level stubs; full asset pipelines go through the glTF importer instead.
type sceneFile struct {
	Scene        string         `yaml:"scene"`
	ActiveCamera string         `yaml:"activeCamera"`
	Nodes        []sceneNodeDef `yaml:"nodes"`
}

type sceneNodeDef struct {
	ID          string             `yaml:"id"`
	Joint       bool               `yaml:"joint"`
	Translation []float32          `yaml:"translation"`
	Rotation    *sceneRotationDef  `yaml:"rotation"`
	Scale       []float32          `yaml:"scale"`
	Bounds      string             `yaml:"bounds"`
	Model       *sceneModelDef     `yaml:"model"`
	Camera      *sceneCameraDef    `yaml:"camera"`
	Light       *sceneLightDef     `yaml:"light"`
	Audio       *sceneAudioDef     `yaml:"audio"`
	Particles   *sceneParticleDef  `yaml:"particles"`
	Properties  map[string]any     `yaml:"properties"`
	Children    []sceneNodeDef     `yaml:"children"`
}

// Angle is in degrees.
type sceneRotationDef struct {
	Axis  []float32 `yaml:"axis"`
	Angle float32   `yaml:"angle"`
}

type sceneModelDef struct {
	Shape  string    `yaml:"shape"` // "cube" or "sphere"
	Size   []float32 `yaml:"size"`
	Radius float32   `yaml:"radius"`
}

type sceneCameraDef struct {
	Type   string  `yaml:"type"` // "perspective" (default) or "orthographic"
	Fov    float32 `yaml:"fov"`
	Aspect float32 `yaml:"aspect"`
	ZoomX  float32 `yaml:"zoomX"`
	ZoomY  float32 `yaml:"zoomY"`
	Near   float32 `yaml:"near"`
	Far    float32 `yaml:"far"`
}

type sceneLightDef struct {
	Type       string    `yaml:"type"` // "directional", "point", or "spot"
	Color      []float32 `yaml:"color"`
	Range      float32   `yaml:"range"`
	InnerAngle float32   `yaml:"innerAngle"`
	OuterAngle float32   `yaml:"outerAngle"`
}

type sceneAudioDef struct {
	Path   string   `yaml:"path"`
	Looped bool     `yaml:"looped"`
	Gain   *float32 `yaml:"gain"`
	Pitch  *float32 `yaml:"pitch"`
}

type sceneParticleDef struct {
	Max      int       `yaml:"max"`
	Rate     float32   `yaml:"rate"`
	Lifetime float32   `yaml:"lifetime"`
	Spread   float32   `yaml:"spread"`
	Gravity  []float32 `yaml:"gravity"`
}

// LoadSceneFile loads a YAML scene description from disk.
func LoadSceneFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read scene file %q", path)
	}
	scene, err := LoadSceneData(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load scene file %q", path)
	}
	return scene, nil
}

// LoadSceneData builds a Scene from a YAML scene description.
func LoadSceneData(data []byte) (*Scene, error) {
	var file sceneFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "parse scene description")
	}

	scene := NewScene(file.Scene)
	for i := range file.Nodes {
		node, err := buildSceneNode(&file.Nodes[i])
		if err != nil {
			return nil, err
		}
		scene.Root().AddChild(node)
	}

	if file.ActiveCamera != "" {
		node := scene.FindNode(file.ActiveCamera)
		if node != nil && node.Camera() != nil {
			scene.SetActiveCamera(node.Camera())
		} else {
			log.Warn("scene description names an active camera that does not exist", zap.String("id", file.ActiveCamera))
		}
	}

	return scene, nil
}

func buildSceneNode(def *sceneNodeDef) (*Node, error) {
	var node *Node
	if def.Joint {
		node = NewJoint(def.ID)
	} else {
		node = NewNode(def.ID)
	}

	if len(def.Translation) == 3 {
		node.SetTranslation(def.Translation[0], def.Translation[1], def.Translation[2])
	}
	if def.Rotation != nil && len(def.Rotation.Axis) == 3 {
		axis := mgl32.Vec3{def.Rotation.Axis[0], def.Rotation.Axis[1], def.Rotation.Axis[2]}
		node.SetRotation(mgl32.QuatRotate(mgl32.DegToRad(def.Rotation.Angle), axis.Normalize()))
	}
	if len(def.Scale) == 3 {
		node.SetScale(def.Scale[0], def.Scale[1], def.Scale[2])
	}

	switch def.Bounds {
	case "", "none":
	case "box":
		node.SetBoundsType(BoundsBox)
	case "sphere":
		node.SetBoundsType(BoundsSphere)
	default:
		return nil, errors.Errorf("node %q: unknown bounds type %q", def.ID, def.Bounds)
	}

	if def.Model != nil {
		mesh, err := meshFromDef(def.ID, def.Model)
		if err != nil {
			return nil, err
		}
		model := NewModel(mesh)
		node.SetModel(model)
		model.Release()
	}

	if def.Camera != nil {
		camera, err := cameraFromDef(def.ID, def.Camera)
		if err != nil {
			return nil, err
		}
		node.SetCamera(camera)
		camera.Release()
	}

	if def.Light != nil {
		light, err := lightFromDef(def.ID, def.Light)
		if err != nil {
			return nil, err
		}
		node.SetLight(light)
		light.Release()
	}

	if def.Audio != nil {
		source, err := NewAudioSource(def.Audio.Path)
		if err != nil {
			return nil, errors.Wrapf(err, "node %q: audio", def.ID)
		}
		source.SetLooped(def.Audio.Looped)
		if def.Audio.Gain != nil {
			source.SetGain(*def.Audio.Gain)
		}
		if def.Audio.Pitch != nil {
			source.SetPitch(*def.Audio.Pitch)
		}
		node.SetAudioSource(source)
		source.Release()
	}

	if def.Particles != nil {
		node.SetParticleEmitter(emitterFromDef(def.Particles))
		node.ParticleEmitter().Release()
	}

	for key, value := range def.Properties {
		node.Properties().Get(key).Set(value)
	}

	for i := range def.Children {
		child, err := buildSceneNode(&def.Children[i])
		if err != nil {
			return nil, err
		}
		node.AddChild(child)
	}

	return node, nil
}

func meshFromDef(nodeID string, def *sceneModelDef) (*Mesh, error) {
	switch def.Shape {
	case "cube":
		size := mgl32.Vec3{1, 1, 1}
		if len(def.Size) == 3 {
			size = mgl32.Vec3{def.Size[0], def.Size[1], def.Size[2]}
		}
		return NewCubeMesh(nodeID, size[0], size[1], size[2]), nil
	case "sphere":
		radius := def.Radius
		if radius <= 0 {
			radius = 0.5
		}
		return NewSphereMesh(nodeID, radius, 8, 16), nil
	default:
		return nil, errors.Errorf("node %q: unknown model shape %q", nodeID, def.Shape)
	}
}

func cameraFromDef(nodeID string, def *sceneCameraDef) (*Camera, error) {
	near := def.Near
	if near == 0 {
		near = 0.1
	}
	far := def.Far
	if far == 0 {
		far = 100
	}

	switch def.Type {
	case "", "perspective":
		fov := def.Fov
		if fov == 0 {
			fov = 60
		}
		aspect := def.Aspect
		if aspect == 0 {
			aspect = 4.0 / 3.0
		}
		return NewPerspectiveCamera(fov, aspect, near, far), nil
	case "orthographic":
		zoomX := def.ZoomX
		if zoomX == 0 {
			zoomX = 1
		}
		zoomY := def.ZoomY
		if zoomY == 0 {
			zoomY = 1
		}
		return NewOrthographicCamera(zoomX, zoomY, near, far), nil
	default:
		return nil, errors.Errorf("node %q: unknown camera type %q", nodeID, def.Type)
	}
}

func lightFromDef(nodeID string, def *sceneLightDef) (*Light, error) {
	color := mgl32.Vec3{1, 1, 1}
	if len(def.Color) == 3 {
		color = mgl32.Vec3{def.Color[0], def.Color[1], def.Color[2]}
	}

	switch def.Type {
	case "directional":
		return NewDirectionalLight(color[0], color[1], color[2]), nil
	case "point":
		return NewPointLight(color[0], color[1], color[2], def.Range), nil
	case "spot":
		return NewSpotLight(color[0], color[1], color[2], def.Range,
			mgl32.DegToRad(def.InnerAngle), mgl32.DegToRad(def.OuterAngle)), nil
	default:
		return nil, errors.Errorf("node %q: unknown light type %q", nodeID, def.Type)
	}
}

func emitterFromDef(def *sceneParticleDef) *ParticleEmitter {
	max := def.Max
	if max <= 0 {
		max = 64
	}
	emitter := NewParticleEmitter(max)
	if def.Rate > 0 {
		emitter.Rate = def.Rate
	}
	if def.Lifetime > 0 {
		emitter.ParticleLifetime = def.Lifetime
	}
	if def.Spread > 0 {
		emitter.Spread = def.Spread
	}
	if len(def.Gravity) == 3 {
		emitter.Gravity = mgl32.Vec3{def.Gravity[0], def.Gravity[1], def.Gravity[2]}
	}
	return emitter
}
