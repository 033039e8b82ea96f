package certdoc

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/canvas"
	"golang.org/x/image/font/sfnt"
)

type FontWeight string

const (
	FontWeightRegular FontWeight = "regular"
	FontWeightBold    FontWeight = "bold"
)

type Font struct {
	Name   string
	Size   float64
	Color  string
	Weight FontWeight
}

// Get font weight of canvas type
func (f *Font) GetFontStyle() canvas.FontStyle {
	switch f.Weight {
	case FontWeightBold:
		return canvas.FontBold
	default:
		return canvas.FontRegular
	}
}

type FontMetadata struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

func getFontMetadataByPath(fontPath string) (*FontMetadata, error) {
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	font, err := sfnt.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}

	name, err := font.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return nil, fmt.Errorf("retrieving font name: %w", err)
	}

	return &FontMetadata{
		Name: name,
		Path: fontPath,
	}, nil
}

// Scan through the directory to process .ttf and .otf files.
func ScanFontDir(dir string) ([]FontMetadata, error) {
	var fonts []FontMetadata

	err := filepath.Walk(dir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(info.Name()))
		if ext != ".ttf" && ext != ".otf" {
			return nil
		}

		meta, err := getFontMetadataByPath(path)
		if err != nil {
			log.Printf("Skipping %q: %v", path, err)
			return nil
		}

		fonts = append(fonts, *meta)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return fonts, nil
}

type FontLoader struct {
	AvailableFonts []FontMetadata
}

func NewFontLoader(fontDir string) (*FontLoader, error) {
	fonts, err := ScanFontDir(fontDir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan font directory: %w", err)
	}

	if len(fonts) == 0 {
		return nil, fmt.Errorf("no usable fonts in %q", fontDir)
	}

	return &FontLoader{AvailableFonts: fonts}, nil
}

// LoadFont loads the named family, or the first available one when name is
// empty or unknown.
func (fl *FontLoader) LoadFont(fontName string, fontStyle canvas.FontStyle) (*canvas.FontFamily, error) {
	meta := fl.AvailableFonts[0]
	for _, font := range fl.AvailableFonts {
		if font.Name == fontName {
			meta = font
			break
		}
	}

	fontFamily := canvas.NewFontFamily(meta.Name)
	if err := fontFamily.LoadFontFile(meta.Path, fontStyle); err != nil {
		return nil, fmt.Errorf("failed to load font file: %w", err)
	}

	return fontFamily, nil
}
