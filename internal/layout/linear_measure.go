package layout

// measureTypical validates the typical item and returns its size on the
// layout and cross axes. Non-virtual layouts have no typical item.
func (l *Linear) measureTypical(ab axisBounds) (float64, float64) {
	if !l.Virtual || l.TypicalItem == nil {
		return 0, 0
	}
	if l.CrossAlign == AlignJustify {
		if c, ok := ab.explicitCross.Get(); ok {
			minC, maxC := l.crossBounds(dataOf(l.TypicalItem))
			l.setCross(l.TypicalItem, clamp(c-ab.padCross(), minC, maxC))
		}
	}
	validateItem(l.TypicalItem)
	return l.split(l.TypicalItem.Size())
}

// validateItems imposes the sizes known before measurement and brings every
// live item's measured size up to date.
func (l *Linear) validateItems(slots []slot, ab axisBounds, distributed Dim) {
	availableCross, hasCross := ab.explicitCross.Get()
	availableCross -= ab.padCross()

	for _, s := range slots {
		if s.item == nil {
			continue
		}
		data := dataOf(s.item)

		if v := l.mainValue(data); v.Unit == UnitFixed {
			l.setMain(s.item, v.Amount)
		}
		if v := l.crossValue(data); v.Unit == UnitFixed {
			l.setCross(s.item, v.Amount)
		} else if v.IsPercent() && hasCross {
			minC, maxC := l.crossBounds(data)
			l.setCross(s.item, clamp(v.Resolve(availableCross, 0), minC, maxC))
		}

		if l.CrossAlign == AlignJustify && hasCross {
			minC, maxC := l.crossBounds(data)
			l.setCross(s.item, clamp(availableCross, minC, maxC))
		}
		if size, ok := distributed.Get(); ok {
			l.setMain(s.item, size)
		}
		validateItem(s.item)
	}
}

// distributedSize computes the single on-axis size shared by every item.
// With an explicit viewport the space is divided evenly; otherwise the
// largest natural item size is used, shrunk or grown when the resulting
// total falls outside the viewport's min/max.
func (l *Linear) distributedSize(slots []slot, ab axisBounds, typMain float64) float64 {
	n := len(slots)
	if n == 0 {
		return 0
	}
	gaps := l.totalGaps(n)
	if explicit, ok := ab.explicit.Get(); ok {
		return max(0, (explicit-ab.padMain()-gaps)/float64(n))
	}

	largest := 0.0
	if l.Virtual {
		largest = typMain
	}
	for _, s := range slots {
		if s.item == nil {
			continue
		}
		validateItem(s.item)
		m, _ := l.split(s.item.Size())
		largest = max(largest, m)
	}

	total := largest*float64(n) + gaps + ab.padMain()
	if clamped := clamp(total, ab.min, ab.max); clamped != total {
		return max(0, (clamped-ab.padMain()-gaps)/float64(n))
	}
	return largest
}

// percentItem is a percentage-sized item still taking part in resolution.
type percentItem struct {
	item     Item
	percent  float64
	min, max float64
}

// applyPercentages sizes percentage items from the space left by the
// others. An item that would violate its own min/max is pinned to the
// bound, removed from the pool, and the rest is redistributed until no
// item violates its bounds.
func (l *Linear) applyPercentages(slots []slot, ab axisBounds) {
	var pool []percentItem
	totalPercent := 0.0
	totalFixed := 0.0
	totalMin := 0.0
	for _, s := range slots {
		data := dataOf(s.item)
		v := l.mainValue(data)
		if !v.IsPercent() {
			m, _ := l.split(s.item.Size())
			totalFixed += m
			continue
		}
		p := max(0, v.Amount)
		minM, maxM := l.mainBounds(data)
		pool = append(pool, percentItem{item: s.item, percent: p, min: minM, max: maxM})
		totalPercent += p
		totalMin += minM
	}
	if len(pool) == 0 {
		return
	}
	totalFixed += l.totalGaps(len(slots)) + ab.padMain()
	if totalPercent < 100 {
		totalPercent = 100
	}

	remaining, ok := ab.explicit.Get()
	if !ok {
		remaining = clamp(totalFixed+totalMin, ab.min, ab.max)
	}
	remaining = max(0, remaining-totalFixed)

	for again := true; again; {
		again = false
		perPercent := 0.0
		if totalPercent > 0 {
			perPercent = remaining / totalPercent
		}
		for i, p := range pool {
			size := perPercent * p.percent
			pinned := size
			if size < p.min {
				pinned = p.min
			} else if size > p.max {
				pinned = p.max
			}
			if pinned != size {
				l.setMain(p.item, pinned)
				validateItem(p.item)
				remaining = max(0, remaining-pinned)
				totalPercent -= p.percent
				pool = append(pool[:i], pool[i+1:]...)
				again = true
				break
			}
			l.setMain(p.item, size)
		}
	}
	for _, p := range pool {
		validateItem(p.item)
	}
}

// estimate returns the on-axis size used for a virtual placeholder.
func (l *Linear) estimate(index int, typMain float64, distributed Dim) float64 {
	if size, ok := distributed.Get(); ok {
		return size
	}
	if l.VariableSize {
		if size, ok := l.sizeCache[index]; ok {
			return size
		}
	}
	return typMain
}

// estimateRange returns the on-axis extent of the first count items,
// gaps included, using estimates only.
func (l *Linear) estimateRange(count int, typMain float64, distributed Dim) float64 {
	total := 0.0
	for i := 0; i < count; i++ {
		total += l.estimate(i, typMain, distributed)
	}
	return total + l.totalGaps(count)
}
