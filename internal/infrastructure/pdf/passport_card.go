// Package pdf renders the printable passport card handed to a verified
// business.
//
// A5 landscape layout:
//
//	┌──────────────────────────────────────────────────────┐
//	│  HEADER: issuer name + "MSME PASSPORT"               │
//	│  ──────────────────────────────────────────────────  │
//	│  Business name + tagline             │   QR code     │
//	│  Category / Established / Address    │               │
//	│  Passport ID                         │  scan hint    │
//	│  ──────────────────────────────────────────────────  │
//	│  FOOTER: verification legend                         │
//	└──────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/msmepassport/msme-passport-api/internal/application/usecase"
	"github.com/msmepassport/msme-passport-api/internal/domain/entity"
)

// ── Color palette ─────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 84, Blue: 62}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.CardGenerator = (*MarotoCardGenerator)(nil)

// MarotoCardGenerator implements usecase.CardGenerator using Maroto v2.
type MarotoCardGenerator struct{}

// NewMarotoCardGenerator builds the generator.
func NewMarotoCardGenerator() *MarotoCardGenerator { return &MarotoCardGenerator{} }

// GeneratePassportCard renders the card PDF and returns its bytes.
func (g *MarotoCardGenerator) GeneratePassportCard(b *entity.Business, qrPNG []byte, issuerName string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("MSME Passport "+b.PassportID, true).
		WithAuthor(issuerName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(issuerName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(bodyRow(b, qrPNG))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate card: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

// headerRow: issuer (left) and document title (right).
func headerRow(issuerName string) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(issuerName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("MSME PASSPORT", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Verified Business Credential", props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

// bodyRow: business identity on the left, QR on the right.
func bodyRow(b *entity.Business, qrPNG []byte) core.Row {
	return row.New(62).Add(
		col.New(8).Add(
			text.New(b.Name, props.Text{
				Style: fontstyle.Bold, Size: 16, Top: 4,
			}),
			text.New(b.Tagline, props.Text{
				Size: 9, Top: 13, Color: colorGray,
			}),
			text.New("Category: "+nonEmpty(b.Category, "—"), props.Text{Size: 9, Top: 24}),
			text.New("Established: "+nonEmpty(b.YearEstablished, "—"), props.Text{Size: 9, Top: 30}),
			text.New("Address: "+nonEmpty(b.Address, "—"), props.Text{Size: 9, Top: 36}),
			text.New(b.PassportID, props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 48, Color: colorPrimary,
			}),
		),
		col.New(4).Add(
			image.NewFromBytes(qrPNG, extension.Png, props.Rect{
				Center: true, Percent: 85,
			}),
			text.New("Scan to verify", props.Text{
				Size: 7, Align: align.Center, Top: 56, Color: colorGray,
			}),
		),
	)
}

// footerRow: verification legend.
func footerRow() core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("This credential is only valid while the business remains verified. Scanning the code checks the live registry.", props.Text{
				Size: 7, Top: 2, Color: colorGray,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
