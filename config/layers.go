package config

import "github.com/yohamta/donburi/ecs"

// Default is the render layer shared by all scenes.
const Default = ecs.LayerDefault
