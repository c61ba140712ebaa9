package ui

import (
	"nestview/internal/config"
	"nestview/internal/flexlist"
	"nestview/internal/holder"
	"nestview/internal/infra/logx"
)

// effects collects what a routed gesture did to the list structure, so the
// update loop can rebind holders and adjust the viewport afterwards. Holder
// hooks write it; the model drains it once per message.
type effects struct {
	structureChanged bool
	revealedAt       int
	revealedRows     int
}

func (fx *effects) reset() { *fx = effects{} }

// holderPool keeps one expandable holder per visible row. Holders are reused
// across reflows: rebind attaches holder i to visible row i and parks the
// surplus, the recycling analog for a terminal list.
type holderPool struct {
	adapter *flexlist.Adapter
	holders []*holder.Expandable
	fx      *effects

	behavior config.BehaviorConfig
}

func newHolderPool(adapter *flexlist.Adapter, behavior config.BehaviorConfig, fx *effects) *holderPool {
	return &holderPool{adapter: adapter, fx: fx, behavior: behavior}
}

// rebind grows the pool to the visible row count and re-attaches every
// holder. Must run after any operation that changes the visible order.
func (p *holderPool) rebind() {
	n := p.adapter.VisibleLen()
	for len(p.holders) < n {
		p.holders = append(p.holders, p.newRowHolder())
	}
	for pos := 0; pos < n; pos++ {
		p.holders[pos].Bind(pos)
	}
	for pos := n; pos < len(p.holders); pos++ {
		p.holders[pos].Bind(holder.Unbound)
	}
}

// at returns the holder bound to a visible row, nil when out of range.
func (p *holderPool) at(pos int) *holder.Expandable {
	if pos < 0 || pos >= p.adapter.VisibleLen() || pos >= len(p.holders) {
		return nil
	}
	return p.holders[pos]
}

func (p *holderPool) newRowHolder() *holder.Expandable {
	view := &rowView{adapter: p.adapter}
	e := holder.NewExpandable(view, p.adapter, holder.ExpandableOptions{
		SelectableOptions: holder.SelectableOptions{
			Sticky: true,
			OnTap: func(position int) bool {
				logx.Debugw("tap", map[string]any{"position": position})
				return false
			},
			OnLongPress: func(position int) {
				logx.Debugw("long-press", map[string]any{"position": position})
			},
		},
		ExpandOnTap:         func() bool { return p.behavior.ExpandOnTap },
		CollapseOnLongPress: func() bool { return p.behavior.CollapseOnLongPress },
		OnExpand: func(position, rows int) {
			if rows > 0 {
				p.fx.structureChanged = true
				p.fx.revealedAt = position
				p.fx.revealedRows = rows
			}
		},
		OnCollapse: func(position, rows int) {
			if rows > 0 {
				p.fx.structureChanged = true
			}
		},
	})
	view.pos = e.Position
	return e
}

// rowView renders the label of whatever row its holder is bound to. It is the
// holder's view surface; the sticky header line reuses it.
type rowView struct {
	adapter *flexlist.Adapter
	pos     func() int
}

func (v *rowView) Render(width int) string {
	it, ok := v.adapter.ItemAt(v.pos())
	if !ok {
		return ""
	}
	return truncateRow(displayItem(it), width)
}
