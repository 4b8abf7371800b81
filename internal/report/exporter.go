// Package report renders exams, results and summaries as PDF files.
package report

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/kadirkilicoglu/PrepAI/internal/domain/exam"
	"github.com/kadirkilicoglu/PrepAI/internal/domain/result"
	"github.com/kadirkilicoglu/PrepAI/internal/domain/summary"
)

// Layout constants, in millimetres on an A4 page.
const (
	marginX      = 10.0
	contentWidth = 180.0
	lineHeight   = 5.0
	bottomGuard  = 30.0 // start a new page when closer than this to the edge
	optionGuard  = 15.0
)

// Exporter builds PDF documents. The Unicode font is fetched lazily through
// fonts; when that fails the document falls back to the built-in Helvetica,
// which cannot render every glyph but always produces a file.
type Exporter struct {
	fonts  *FontSource
	logger *slog.Logger
}

func NewExporter(fonts *FontSource, logger *slog.Logger) *Exporter {
	return &Exporter{fonts: fonts, logger: logger}
}

// doc couples an fpdf document with its cursor and resolved font family.
type doc struct {
	pdf    *fpdf.Fpdf
	family string
	y      float64
	pageH  float64
}

func (e *Exporter) newDoc() *doc {
	pdf := fpdf.New("P", "mm", "A4", "")
	family := "Helvetica"

	if data, err := e.fonts.Bytes(); err != nil {
		e.logger.Warn("unicode font unavailable, using built-in font", "error", err)
	} else {
		pdf.AddUTF8FontFromBytes("Roboto", "", data)
		pdf.AddUTF8FontFromBytes("Roboto", "B", data)
		family = "Roboto"
	}

	pdf.AddPage()
	_, pageH := pdf.GetPageSize()
	return &doc{pdf: pdf, family: family, pageH: pageH}
}

func (d *doc) setFont(style string, size float64) {
	d.pdf.SetFont(d.family, style, size)
}

func (d *doc) text(x float64, s string) {
	d.pdf.Text(x, d.y, s)
}

// ensure starts a new page when fewer than need millimetres remain.
func (d *doc) ensure(need float64) {
	if d.y > d.pageH-need {
		d.pdf.AddPage()
		d.y = 20
	}
}

// wrapped writes s split to the content width, advancing the cursor one
// line height per rendered line.
func (d *doc) wrapped(x float64, s string) {
	for _, line := range d.pdf.SplitText(s, contentWidth-(x-marginX)) {
		d.ensure(optionGuard)
		d.text(x, line)
		d.y += lineHeight
	}
}

// header draws the shared title block: title, date, a right-aligned field
// and a separator rule. Leaves the cursor at the first content line.
func (d *doc) header(title, rightField string) {
	d.setFont("B", 18)
	d.pdf.Text(marginX, 20, title)

	d.setFont("", 10)
	d.pdf.Text(marginX, 28, time.Now().Format("02.01.2006"))
	if rightField != "" {
		w := d.pdf.GetStringWidth(rightField)
		d.pdf.Text(marginX+contentWidth-w, 28, rightField)
	}

	d.pdf.Line(marginX, 32, marginX+contentWidth, 32)
	d.y = 40
}

func (d *doc) output() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// BlankTest renders an exam as a printable, unanswered test sheet: numbered
// questions with answer circles, true/false markers, ruled answer lines or
// the question image, depending on type.
func (e *Exporter) BlankTest(ex *exam.Exam) ([]byte, error) {
	d := e.newDoc()
	d.header(ex.Title, "Name: ________________")

	for i, q := range ex.Questions {
		d.ensure(bottomGuard)

		d.setFont("B", 11)
		d.wrapped(marginX, fmt.Sprintf("%d. %s", i+1, q.Text))
		d.y += 1

		d.setFont("", 10)
		switch q.Type {
		case exam.TrueFalse:
			d.ensure(optionGuard)
			d.pdf.Circle(13, d.y-1, 1.5, "D")
			d.text(16, "True")
			d.pdf.Circle(47, d.y-1, 1.5, "D")
			d.text(50, "False")
			d.y += 10

		case exam.FillBlank:
			d.y += 5
			d.ruledLine()
			d.y += 12

		case exam.OpenEnded:
			d.y += 5
			for j := 0; j < 3; j++ {
				d.ensure(optionGuard)
				d.ruledLine()
				d.y += 10
			}
			d.y += 2

		default:
			if q.Type.HasImage() {
				d.image(q)
			}
			for _, opt := range q.Choices() {
				d.ensure(optionGuard)
				d.pdf.Circle(13, d.y-1, 1.5, "D")
				d.wrapped(16, opt)
				d.y += 2
			}
		}

		d.y += 5
	}

	return d.output()
}

// ScoredReport renders a graded exam: each question with the submitted
// answer, the correct answer and the explanation, plus the score up top.
func (e *Exporter) ScoredReport(ex *exam.Exam, res *result.Result) ([]byte, error) {
	d := e.newDoc()
	d.header(ex.Title, fmt.Sprintf("Score: %d%%", res.RoundedScore()))

	byQuestion := make(map[string]result.Feedback, len(res.Feedback))
	for _, fb := range res.Feedback {
		byQuestion[fb.QuestionID] = fb
	}

	// A deleted exam leaves no question text; render from the feedback alone.
	questions := ex.Questions
	if len(questions) == 0 {
		questions = make([]exam.Question, 0, len(res.Feedback))
		for _, fb := range res.Feedback {
			questions = append(questions, exam.Question{ID: fb.QuestionID, Text: "Question " + fb.QuestionID})
		}
	}

	for i, q := range questions {
		d.ensure(bottomGuard)

		d.setFont("B", 11)
		d.wrapped(marginX, fmt.Sprintf("%d. %s", i+1, q.Text))
		d.y += 1

		d.setFont("", 10)
		fb, ok := byQuestion[q.ID]
		if !ok {
			d.wrapped(marginX+3, "Not answered")
			d.y += 5
			continue
		}

		verdict := "Incorrect"
		if fb.IsCorrect {
			verdict = "Correct"
		}
		d.wrapped(marginX+3, fmt.Sprintf("Your answer: %s (%s)", displayAnswer(fb.UserAnswer), verdict))
		if !fb.IsCorrect {
			d.wrapped(marginX+3, "Correct answer: "+fb.CorrectAnswer)
		}
		if fb.Explanation != "" {
			d.setFont("", 9)
			d.wrapped(marginX+3, fb.Explanation)
			d.setFont("", 10)
		}

		d.y += 5
	}

	return d.output()
}

// SummaryDocument renders a generated summary as a plain text document.
func (e *Exporter) SummaryDocument(s *summary.Summary) ([]byte, error) {
	d := e.newDoc()

	d.setFont("B", 16)
	d.pdf.Text(marginX, 20, s.Title)

	d.setFont("", 11)
	d.y = 30
	for _, para := range strings.Split(s.Content, "\n") {
		if para == "" {
			d.y += 3
			continue
		}
		for _, line := range d.pdf.SplitText(para, contentWidth) {
			if d.y > 280 {
				d.pdf.AddPage()
				d.y = 20
			}
			d.text(marginX, line)
			d.y += 6
		}
	}

	return d.output()
}

// ruledLine draws one light answer line across the content width.
func (d *doc) ruledLine() {
	d.pdf.SetDrawColor(200, 200, 200)
	d.pdf.Line(marginX+2, d.y, marginX+contentWidth, d.y)
	d.pdf.SetDrawColor(0, 0, 0)
}

// image places the question's embedded image, or a placeholder note when
// the payload cannot be decoded. A bad image never aborts the document.
func (d *doc) image(q exam.Question) {
	raw, err := q.ImageBytes()
	if err == nil && raw != nil {
		if kind, ok := sniffImage(raw); ok {
			name := "q-" + q.ID
			opts := fpdf.ImageOptions{ImageType: kind, ReadDpi: true}
			d.ensure(70)
			d.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(raw))
			d.pdf.ImageOptions(name, marginX, d.y, 80, 60, false, opts, 0, "")
			d.y += 65
			return
		}
	}
	d.ensure(optionGuard)
	d.text(marginX, "[Image unavailable]")
	d.y += 10
}

// sniffImage maps the decoded format to fpdf's image-type tag.
func sniffImage(raw []byte) (string, bool) {
	_, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return "", false
	}
	switch format {
	case "jpeg":
		return "JPG", true
	case "png":
		return "PNG", true
	}
	return "", false
}

func displayAnswer(a string) string {
	if a == "" {
		return "(blank)"
	}
	return a
}

// Filename sanitizes a document title into a safe .pdf file name.
func Filename(title, fallback string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_':
			return r
		case r == ' ':
			return '_'
		}
		return -1
	}, title)
	cleaned = strings.Trim(cleaned, "_")
	if cleaned == "" {
		cleaned = fallback
	}
	return cleaned + ".pdf"
}
