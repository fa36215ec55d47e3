package ui

import "testing"

func TestPoolEvictsUntouched(t *testing.T) {
	const n = 4
	p := NewPool("test", n)
	var frame uint32 = 1
	for id := ID(1); id <= n; id++ {
		p.Init(frame, id)
	}
	for frame = 2; frame <= 5; frame++ {
		for id := ID(1); id <= n; id++ {
			if id == 3 {
				continue
			}
			idx := p.Get(id)
			if idx < 0 {
				t.Fatalf("frame %d: id %d missing", frame, id)
			}
			p.Update(frame, idx)
		}
	}
	idx := p.Init(frame, 99)
	if idx != 2 {
		t.Errorf("evicted slot %d, want 2", idx)
	}
	if p.Get(3) != -1 {
		t.Error("untouched id still present")
	}
	for _, id := range []ID{1, 2, 4, 99} {
		if p.Get(id) < 0 {
			t.Errorf("id %d evicted", id)
		}
	}
}

func TestPoolTiesLowestIndex(t *testing.T) {
	p := NewPool("test", 3)
	if got := p.Init(1, 7); got != 0 {
		t.Errorf("first init slot = %d, want 0", got)
	}
	if got := p.Init(1, 8); got != 1 {
		t.Errorf("second init slot = %d, want 1", got)
	}
	p.Clear(0)
	if got := p.Init(2, 9); got != 0 {
		t.Errorf("init after clear slot = %d, want 0", got)
	}
	if it := p.Item(0); it.ID != 9 || it.LastUpdate != 2 {
		t.Errorf("item = %+v", it)
	}
}

func TestPoolExhausted(t *testing.T) {
	p := NewPool("test", 2)
	p.Init(1, 1)
	p.Init(1, 2)
	mustPanicKind(t, ErrCapacity, func() { p.Init(1, 3) })
}

func TestPoolFreeSlotsFirst(t *testing.T) {
	tests := []struct {
		name  string
		frame uint32
		setup func(p *Pool)
		want  int
	}{
		{"fresh pool at frame zero", 0, func(*Pool) {}, 0},
		{"fresh pool", 5, func(*Pool) {}, 0},
		{"free slot over stale one", 5, func(p *Pool) { p.Init(1, 1) }, 1},
		{"cleared slot at frame zero", 0, func(p *Pool) {
			p.Init(0, 1)
			p.Init(0, 2)
			p.Clear(0)
		}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPool("test", 3)
			tt.setup(&p)
			if got := p.Init(tt.frame, 42); got != tt.want {
				t.Errorf("slot = %d, want %d", got, tt.want)
			}
			if it := p.Item(tt.want); it.ID != 42 || it.LastUpdate != tt.frame {
				t.Errorf("item = %+v", it)
			}
		})
	}
}

func TestContainerBeforeFirstBegin(t *testing.T) {
	ctx := newTestContext()
	cnt := ctx.Container("W")
	if !cnt.Open || cnt.ZIndex != 1 {
		t.Fatalf("container = %+v, want open at z 1", *cnt)
	}
	cnt.Rect = Rect{10, 10, 120, 80}
	var got *Container
	frame(ctx, func() {
		if ctx.BeginWindow("W", testWindow) != 0 {
			got = ctx.CurrentContainer()
			ctx.EndWindow()
		}
	})
	if got != cnt {
		t.Fatal("window did not reuse the container created before Begin")
	}
	if cnt.Rect != (Rect{10, 10, 120, 80}) {
		t.Errorf("rect = %v, want the preset one", cnt.Rect)
	}
}

func TestContainerPoolRecycles(t *testing.T) {
	ctx := newTestContext(WithConfig(Config{ContainerPoolSize: 2}))
	opt := OptNoTitle | OptNoResize | OptNoScroll
	declare := func(names ...string) {
		frame(ctx, func() {
			for _, name := range names {
				if ctx.BeginWindowEx(name, Rect{0, 0, 50, 50}, opt) != 0 {
					ctx.EndWindow()
				}
			}
		})
	}
	declare("A", "B")
	declare("A")
	declare("C")
	if ctx.containerPool.Get(ctx.IDString("B")) != -1 {
		t.Error("B should have been recycled")
	}
	if ctx.containerPool.Get(ctx.IDString("A")) == -1 {
		t.Error("A should have survived")
	}
}
