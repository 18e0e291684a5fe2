package algorithms

import (
	"math"
)

// nmiEpsilon keeps log arguments strictly positive.
const nmiEpsilon = 1e-15

// NMI computes the normalized mutual information between a ground-truth and a
// detected partition over the same node set: 2·MI / (H(gt) + H(detected)),
// clamped to [0,1]. Nodes missing from either partition are skipped. When
// both partitions are trivial (zero entropy on both sides, e.g. a single
// community each) the partitions carry identical information and the score is
// exactly 1.
func NMI(groundTruth, detected Partition, nodes []string) float64 {
	joint := make(map[[2]int]int)
	gtCounts := make(map[int]int)
	detCounts := make(map[int]int)
	total := 0

	for _, id := range nodes {
		gt, ok := groundTruth[id]
		if !ok {
			continue
		}
		det, ok := detected[id]
		if !ok {
			continue
		}
		joint[[2]int{gt, det}]++
		gtCounts[gt]++
		detCounts[det]++
		total++
	}

	if total == 0 {
		return 1.0
	}

	tf := float64(total)
	mi := 0.0
	for key, count := range joint {
		pxy := float64(count) / tf
		px := float64(gtCounts[key[0]]) / tf
		py := float64(detCounts[key[1]]) / tf
		mi += pxy * math.Log(pxy/(px*py)+nmiEpsilon)
	}

	hGT := entropy(gtCounts, tf)
	hDet := entropy(detCounts, tf)

	if hGT == 0 && hDet == 0 {
		return 1.0
	}

	nmi := 2.0 * mi / (hGT + hDet)
	if nmi < 0 {
		return 0.0
	}
	if nmi > 1 {
		return 1.0
	}
	return nmi
}

func entropy(counts map[int]int, total float64) float64 {
	h := 0.0
	for _, count := range counts {
		p := float64(count) / total
		h -= p * math.Log(p+nmiEpsilon)
	}
	return h
}
