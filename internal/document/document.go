// Package document is the sink the report composer writes into: an ordered
// sequence of headings, paragraphs, tables and page breaks that is saved as
// a .docx file. It only knows structure; what goes into a report is decided
// by the report package.
package document

// Run is a span of text within a paragraph with its character formatting.
type Run struct {
	Text string
	Bold bool
}

// Text returns a plain run.
func Text(s string) Run { return Run{Text: s} }

// Bold returns a bold run.
func Bold(s string) Run { return Run{Text: s, Bold: true} }

type block interface {
	isBlock()
}

type heading struct {
	text  string
	level int // 0 = document title, 1 = section heading
}

type paragraph struct {
	runs []Run
}

type table struct {
	header []string
	rows   [][]string
}

type pageBreak struct{}

func (heading) isBlock()   {}
func (paragraph) isBlock() {}
func (table) isBlock()     {}
func (pageBreak) isBlock() {}

// Document is an in-memory report document. Build it up with the Add
// methods, then write it once with Save; it is never mutated after that.
type Document struct {
	blocks []block
}

// New returns an empty document.
func New() *Document {
	return &Document{}
}

// AddHeading appends a heading. Level 0 is the document title style,
// level 1 a section heading.
func (d *Document) AddHeading(text string, level int) {
	d.blocks = append(d.blocks, heading{text: text, level: level})
}

// AddParagraph appends a paragraph made of the given runs.
func (d *Document) AddParagraph(runs ...Run) {
	d.blocks = append(d.blocks, paragraph{runs: runs})
}

// AddTable appends a bordered table with a bold header row.
func (d *Document) AddTable(header []string, rows [][]string) {
	d.blocks = append(d.blocks, table{header: header, rows: rows})
}

// AddPageBreak forces a page boundary before the next block.
func (d *Document) AddPageBreak() {
	d.blocks = append(d.blocks, pageBreak{})
}
