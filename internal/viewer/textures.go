package viewer

import (
	"fmt"
	"image"
	"path"
	"strings"

	"github.com/Faultbox/goassimp/internal/render"
	"github.com/Faultbox/goassimp/pkg/assimp"
)

// textureSource resolves material texture paths. "*N" names embedded
// texture N of the scene; other paths are read through readFile, first as
// written (with backslashes turned into slashes) and then by base name,
// since exporters often store absolute paths from the author's machine.
func textureSource(scene assimp.SceneReader, readFile func(string) ([]byte, error)) render.TextureSource {
	return func(p string) (image.Image, error) {
		if i, ok := (assimp.TextureInfo{Path: p}).Embedded(); ok {
			if i < 0 || i >= scene.NumTextures() {
				return nil, fmt.Errorf("embedded texture %s: scene has %d", p, scene.NumTextures())
			}
			return scene.Texture(i).Image()
		}

		name := strings.ReplaceAll(p, `\`, "/")
		data, err := readFile(name)
		if err != nil {
			base := path.Base(name)
			if base == name {
				return nil, err
			}
			if data, err = readFile(base); err != nil {
				return nil, err
			}
		}
		return render.DecodeImage(data, path.Ext(name))
	}
}
