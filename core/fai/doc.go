// Package fai provides random access into FASTA and FASTQ files through a
// samtools-compatible .fai index: build an index from a sequence file,
// load it, and fetch the bases (and, for FASTQ, quality strings) of a
// region token such as "chr2:100-200".
package fai
