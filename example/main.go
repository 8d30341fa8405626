// File: lixenwraith/maskconfig/example/main.go
package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/maskconfig"
)

func main() {
	// Normally the embedding process sets this before launch.
	os.Setenv("MASK_CONFIG", `{
		"userAgent": "Mozilla/5.0 (X11; Linux x86_64)",
		"debug": true,
		"screen.width": 1920,
		"screen.height": 1080,
		"fonts": ["Arial", "DejaVu Sans"],
		"webGl:parameters": {"7936": "Example Vendor", "3379": 16384},
		"voices": [
			{"lang": "en-US", "name": "Default", "voiceUri": "urn:default",
			 "isDefault": true, "isLocalService": true}
		]
	}`)

	r := maskconfig.New()

	if ua, ok := r.String("userAgent"); ok {
		fmt.Println("userAgent:", ua)
	}

	if r.CheckBool("debug") {
		fmt.Println("debug enabled")
	}

	if rect, ok := r.Rect("screen.left", "screen.top", "screen.width", "screen.height"); ok {
		fmt.Printf("screen: %dx%d at (%d,%d)\n", rect.Width, rect.Height, rect.Left, rect.Top)
	}

	fmt.Println("fonts:", r.StringListLower("fonts"))

	maxTexture := maskconfig.ParamOr[int32](r, 3379, 8192, false)
	fmt.Println("max texture size:", maxTexture)

	if voices, ok := r.Voices(); ok {
		for _, v := range voices {
			fmt.Printf("voice %s (%s) default=%v\n", v.Name, v.Lang, v.Default)
		}
	}
}
