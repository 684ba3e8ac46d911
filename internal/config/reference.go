package config

// Cas9 is a slice of the SpCas9 coding sequence, the default reference that
// falling sequences are sampled from.
const Cas9 = "" +
	"ATGGATAAGAAGTATAGCATCGGCCTGGATATTGGAACTAACTCCGTGGGTTGGGCAGTGATTACAGACG" +
	"ACTACAAGGTCCCTAGCAAGAAATTTAAGGTGCTGGGTAACACCGACAGGCACAGCATCAAGAAAAATCT" +
	"GATTGGAGCCCTGCTGTTCGGTTCTGGAGAGACTGCCGAAGCAACACGCCTGAAAAGAACAGCAAGAAGG" +
	"CGCTATACCAGAAGGAAGAATAGAATCTGTTACCTGCAGGAGATTTTCTCTAACGAAATGGCTAAGGTGG" +
	"ACGATTCATTCTTTCATAGGCTGGAGGAAAGTTTCCTGGTCGAGGAAGATAAGAAACACGAGCGCCATCC" +
	"TATCTTTGGAAACATTGTGGACGAGGTCGCCTATCACGAAAAATACCCAACCATCTATCATCTGCGCAAG" +
	"AAACTGGCTGACTCTACTGATAAAGCCGACCTGAGACTGATCTATCTGGCTCTGGCCCACATGATTAAGT" +
	"TCAGGGGTCATTTTCTGATCGAGGGCGATCTGAACCCCGACAATTCCGATGTGGACAAGCTGTTCATCCA" +
	"GCTGGTCCAGATTTACAATCAGCTGTTTGAGGAAAACCCTATTAATGCTTCCAGAGTGGACGCAAAAGCT" +
	"ATCCTGTCAGCCAGGCTGTCCAAGTCACGCAGACTGGAGAACCTGATTGCACAGCTGCCCGGAGAAAAGA" +
	"GGAACGGTCTGTTTGGAAATCTGATCGCTCTGAGTCTGGGCCTGACTCCTAACTTCAAAAGCAATTTTGA" +
	"TCTGGCTGAGGACGCCAAACTGCAGCTGTCAAAGGACACATATGACGATGACCTGGATAACCTGCTGGCA" +
	"CAGATCGGAGATCAGTACGCTGACCTGTTCCTGGCTGCCAAAAATCTGTCCGACGCAATCCTGCTGTCAG" +
	"ATATTCTGAGAGTGAACAGCGAGATTACAAAAGCACCTCTGAGTGCCAGCATGATCAAGAGATATGACGA" +
	"GCACCATCAGGATCTGACCC"
