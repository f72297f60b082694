package leveldata

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/lafriks/go-tiled"
)

// Object group names recognized in level files.
const (
	groupWalls       = "Walls"
	groupBricks      = "Bricks"
	groupHazards     = "Hazards"
	groupGoal        = "Goal"
	groupPaddleSpawn = "PaddleSpawn"
	groupBallSpawn   = "BallSpawn"
)

// LoadLevel parses a TMX file into a Level. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS. Missing spawn markers are not an error; the
// corresponding field stays nil and the caller decides on a fallback.
func LoadLevel(fsys fs.FS, tmxPath, name string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:      name,
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupWalls:
			for _, o := range og.Objects {
				level.Walls = append(level.Walls, objectRect(o))
			}
		case groupBricks:
			for _, o := range og.Objects {
				level.Bricks = append(level.Bricks, Brick{
					Rect:   objectRect(o),
					TypeID: o.Properties.GetInt("brickType"),
				})
			}
		case groupHazards:
			for _, o := range og.Objects {
				level.Hazards = append(level.Hazards, objectRect(o))
			}
		case groupGoal:
			for _, o := range og.Objects {
				level.Goals = append(level.Goals, objectRect(o))
			}
		case groupPaddleSpawn:
			if len(og.Objects) > 0 {
				level.PaddleSpawn = objectMarker(og.Objects[0])
			}
		case groupBallSpawn:
			if len(og.Objects) > 0 {
				level.BallSpawn = objectMarker(og.Objects[0])
			}
		}
	}

	return level, nil
}

// LoadAll reads the manifest in dir and loads every listed level, in
// manifest order.
func LoadAll(fsys fs.FS, dir string) ([]*Level, error) {
	manifest, err := LoadManifest(fsys, path.Join(dir, "manifest.yaml"))
	if err != nil {
		return nil, err
	}

	levels := make([]*Level, 0, len(manifest.Levels))
	for _, entry := range manifest.Levels {
		level, err := LoadLevel(fsys, path.Join(dir, entry.File), entry.Name)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", entry.File, err)
		}
		levels = append(levels, level)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("manifest in %s lists no levels", dir)
	}
	return levels, nil
}

func objectRect(o *tiled.Object) Rect {
	return Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}

func objectMarker(o *tiled.Object) *Marker {
	return &Marker{X: o.X, Y: o.Y, Rotation: o.Rotation}
}
