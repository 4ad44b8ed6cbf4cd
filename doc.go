// Package conllu applies CorrectForm annotations to CoNLL-U files.
//
// # Quick Start
//
//	c := conllu.New()
//	report, err := c.ProcessDir("treebank/")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Corrected %d forms in %d files\n", report.Forms, report.Files)
//
// For each *.conllu file in the directory a sibling *_updated.conllu
// file is written; inputs are never modified. Token lines whose misc
// column carries a CorrectForm=<value> entry get their form column
// replaced with that value, and each sentence's "# text = " metadata
// line is regenerated from the corrected forms.
//
// # Format
//
// CoNLL-U is plain UTF-8 text: one token per line with ten
// tab-separated columns, "#"-prefixed metadata lines, sentences
// separated by blank lines. See
// https://universaldependencies.org/format.html
package conllu
