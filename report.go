package conllu

// Report summarizes what a correction run did.
type Report struct {
	Files     int // input files processed
	Sentences int // sentence blocks containing at least one token
	Forms     int // token forms overwritten
	Summaries int // "# text = " lines regenerated
}

// Merge adds another report's counters into r.
func (r *Report) Merge(o Report) {
	r.Files += o.Files
	r.Sentences += o.Sentences
	r.Forms += o.Forms
	r.Summaries += o.Summaries
}
