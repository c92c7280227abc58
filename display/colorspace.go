package display

import (
	"fmt"
	"log/slog"

	"github.com/tekert/golang-display/display/pkg/hexf"
)

// See https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-logcolorspacew

// LCSCSTYPE values.
const (
	LCS_CALIBRATED_RGB      uint32 = 0x00000000
	LCS_sRGB                uint32 = 0x73524742 // 'sRGB'
	LCS_WINDOWS_COLOR_SPACE uint32 = 0x57696E20 // 'Win '
)

// LCSGAMUTMATCH values.
const (
	LCS_GM_BUSINESS         int32 = 0x00000001
	LCS_GM_GRAPHICS         int32 = 0x00000002
	LCS_GM_IMAGES           int32 = 0x00000004
	LCS_GM_ABS_COLORIMETRIC int32 = 0x00000008
)

// ColorSpaceKind tells how color values are to be interpreted.
type ColorSpaceKind uint8

const (
	// Color values are calibrated RGB values, translated using the endpoints
	// before being passed to the device.
	CalibratedRGB ColorSpaceKind = iota + 1
	// Color values are sRGB values.
	SRGB
	// Color values are Windows default color space color values.
	WindowsColorSpace
)

func (k ColorSpaceKind) String() string {
	switch k {
	case CalibratedRGB:
		return "CalibratedRGB"
	case SRGB:
		return "sRGB"
	case WindowsColorSpace:
		return "Windows"
	}
	return fmt.Sprintf("ColorSpaceKind(%d)", k)
}

func (k ColorSpaceKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ColorSpaceIntent is the gamut matching method.
type ColorSpaceIntent uint8

const (
	// Absolute Colorimetric: maintain the white point, match colors to their
	// nearest color in the destination gamut.
	IntentMatch ColorSpaceIntent = iota + 1
	// Saturation: used for business charts and other situations in which
	// undithered colors are required.
	IntentGraphic
	// Relative Colorimetric: used for graphic designs and named colors.
	IntentProof
	// Perceptual: used for photographs and natural images.
	IntentPicture
)

func (i ColorSpaceIntent) String() string {
	switch i {
	case IntentMatch:
		return "Match"
	case IntentGraphic:
		return "Graphic"
	case IntentProof:
		return "Proof"
	case IntentPicture:
		return "Picture"
	}
	return fmt.Sprintf("ColorSpaceIntent(%d)", i)
}

func (i ColorSpaceIntent) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

type CieXyz struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

type Endpoints struct {
	Red   CieXyz `json:"red"`
	Green CieXyz `json:"green"`
	Blue  CieXyz `json:"blue"`
}

// ColorSpaceType carries Endpoints only for CalibratedRGB.
type ColorSpaceType struct {
	Kind      ColorSpaceKind `json:"kind"`
	Endpoints *Endpoints     `json:"endpoints,omitempty"`
}

type Gamma struct {
	Red   float32 `json:"red"`
	Green float32 `json:"green"`
	Blue  float32 `json:"blue"`
}

// ColorSpace is a decoded logical color space, see DecodeColorSpace.
type ColorSpace struct {
	Type     ColorSpaceType   `json:"type"`
	Intent   ColorSpaceIntent `json:"intent"`
	Gamma    Gamma            `json:"gamma"`
	Filename string           `json:"filename"`
}

func decodeCieXyz(r RawCieXyz) CieXyz {
	return CieXyz{
		X: Decode2Dot30(r.X),
		Y: Decode2Dot30(r.Y),
		Z: Decode2Dot30(r.Z),
	}
}

func decodeIntent(v int32) (ColorSpaceIntent, error) {
	switch v {
	case LCS_GM_ABS_COLORIMETRIC:
		return IntentMatch, nil
	case LCS_GM_BUSINESS:
		return IntentGraphic, nil
	case LCS_GM_GRAPHICS:
		return IntentProof, nil
	case LCS_GM_IMAGES:
		return IntentPicture, nil
	}
	return 0, fmt.Errorf("%w: lcsIntent %s", ErrColorSpace, hexf.NUm32(uint32(v)))
}

// DecodeColorSpace builds a ColorSpace out of a raw LOGCOLORSPACEW record.
func DecodeColorSpace(raw *RawColorSpace) (cs ColorSpace, err error) {
	switch raw.CSType {
	case LCS_CALIBRATED_RGB:
		cs.Type = ColorSpaceType{
			Kind: CalibratedRGB,
			Endpoints: &Endpoints{
				Red:   decodeCieXyz(raw.Red),
				Green: decodeCieXyz(raw.Green),
				Blue:  decodeCieXyz(raw.Blue),
			},
		}
	case LCS_sRGB:
		cs.Type = ColorSpaceType{Kind: SRGB}
	case LCS_WINDOWS_COLOR_SPACE:
		cs.Type = ColorSpaceType{Kind: WindowsColorSpace}
	default:
		return cs, fmt.Errorf("%w: lcsCSType %s", ErrColorSpace, hexf.NUm32(raw.CSType))
	}

	if cs.Intent, err = decodeIntent(raw.Intent); err != nil {
		return ColorSpace{}, err
	}

	cs.Gamma = Gamma{
		Red:   Decode8Dot8Gamma(raw.GammaRed),
		Green: Decode8Dot8Gamma(raw.GammaGreen),
		Blue:  Decode8Dot8Gamma(raw.GammaBlue),
	}
	cs.Filename = DecodeWideString(raw.Filename[:])
	return cs, nil
}

// ColorSpace reads the logical color space of the DC of adapter device
// (\\.\DISPLAY1 for example).
func (h *Host) ColorSpace(device string) (ColorSpace, error) {
	dc, err := h.sys.CreateDisplayDC(device)
	if err != nil {
		return ColorSpace{}, opError("create dc", device, err)
	}
	defer func() {
		if err := h.sys.DeleteDC(dc); err != nil {
			slog.Warn("display: failed to delete dc", "device", device, "error", err)
		}
	}()

	cs, err := h.sys.ColorSpace(dc)
	if err != nil {
		return ColorSpace{}, opError("get color space", device, err)
	}
	raw, err := h.sys.LogColorSpace(cs)
	if err != nil {
		return ColorSpace{}, opError("get log color space", device, err)
	}
	return DecodeColorSpace(&raw)
}
