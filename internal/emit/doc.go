// Package emit writes framed, line-wrapped FASTA and FASTQ records.
package emit
