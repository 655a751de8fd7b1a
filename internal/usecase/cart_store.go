package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/RamiSparda/AppMovilApp/internal/domain/model"
	repo "github.com/RamiSparda/AppMovilApp/internal/repository"
)

// 永続化キーと各I/Oの上限時間
const (
	cartStorageKey = "@cart"
	cartIOTimeout  = 3 * time.Second
)

// CartStore はカート状態の唯一の保有者。
// 変更は必ずreducer経由で行い、明細が変わるたびにKVストアへ非同期保存する。
// 保存は1本のworkerに直列化し、未保存のスナップショットは新しいもので置き換えるため
// 常に最後に確定した状態が勝つ。読み込み・保存の失敗は記録するだけで呼び出し側へは出さない。
type CartStore struct {
	kv repo.KVRepository

	mu    sync.RWMutex
	state model.CartState

	pending   chan []model.CartLine
	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

// NewCartStore はストアを生成し、保存済みカートの読み込みと保存workerを開始する。
// 読み込みは非同期で、完了までは空カートとして振る舞う。
func NewCartStore(kv repo.KVRepository) *CartStore {
	s := &CartStore{
		kv:      kv,
		state:   model.EmptyCartState(),
		pending: make(chan []model.CartLine, 1),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}

	go s.saveWorker()
	go s.loadFromStorage()

	return s
}

// Close は保存workerを止め、未保存の最新スナップショットを書き切ってから戻る。
func (s *CartStore) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
	<-s.stopped
}

// AddToCart は商品を追加する。quantityが0以下なら1として扱う。
// 2系統のレコードはここで正規化してからreducerへ渡す。
func (s *CartStore) AddToCart(p model.ProductRecord, quantity int64, color string, size string) {
	if quantity <= 0 {
		quantity = 1
	}

	s.dispatch(CartAction{
		Kind:          CartActionAddItem,
		Product:       p.Snapshot(),
		Quantity:      quantity,
		SelectedColor: color,
		SelectedSize:  size,
	})
}

// RemoveFromCart は明細IDで削除する。無ければ何もしない。
func (s *CartStore) RemoveFromCart(lineID string) {
	s.dispatch(CartAction{Kind: CartActionRemoveItem, LineID: lineID})
}

// UpdateQuantity は数量の絶対値セット。0以下は削除になる。
func (s *CartStore) UpdateQuantity(lineID string, quantity int64) {
	s.dispatch(CartAction{Kind: CartActionUpdateQuantity, LineID: lineID, Quantity: quantity})
}

// ClearCart は空の初期状態へ戻す。
func (s *CartStore) ClearCart() {
	s.dispatch(CartAction{Kind: CartActionClearCart})
}

// IsInCart は同じ導出規則で明細IDを計算して在否を返す。状態は変更しない。
func (s *CartStore) IsInCart(productID string, color string, size string) bool {
	lineID := model.DeriveLineID(productID, color, size)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, l := range s.state.Lines {
		if l.LineID == lineID {
			return true
		}
	}
	return false
}

// GetItemQuantity は該当バリエーションの数量を返す。無ければ0。
func (s *CartStore) GetItemQuantity(productID string, color string, size string) int64 {
	lineID := model.DeriveLineID(productID, color, size)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, l := range s.state.Lines {
		if l.LineID == lineID {
			return l.Quantity
		}
	}
	return 0
}

// State は現在の状態のコピーを返す。明細スライスも複製するので呼び出し側から変更できない。
func (s *CartStore) State() model.CartState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := make([]model.CartLine, len(s.state.Lines))
	copy(lines, s.state.Lines)

	st := s.state
	st.Lines = lines
	return st
}

// dispatch は遷移を直列に適用し、明細が変わったときだけ保存を予約する。
func (s *CartStore) dispatch(a CartAction) {
	s.mu.Lock()
	prev := s.state
	next := ReduceCart(s.state, a)
	s.state = next
	changed := !equalLines(prev.Lines, next.Lines)
	s.mu.Unlock()

	if changed {
		s.scheduleSave(next.Lines)
	}
}

func equalLines(a []model.CartLine, b []model.CartLine) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// scheduleSave は保存待ちスロットへ置く。未保存の古いスナップショットは捨てる。
func (s *CartStore) scheduleSave(lines []model.CartLine) {
	for {
		select {
		case s.pending <- lines:
			return
		default:
		}

		select {
		case <-s.pending:
		default:
		}
	}
}

func (s *CartStore) saveWorker() {
	defer close(s.stopped)

	for {
		select {
		case <-s.done:
			// 終了前に残りを書き切る
			select {
			case lines := <-s.pending:
				s.save(lines)
			default:
			}
			return

		case lines := <-s.pending:
			s.save(lines)
		}
	}
}

// save は明細列だけをJSONで書く。合計は保存せず、読み込み時に再導出する。
func (s *CartStore) save(lines []model.CartLine) {
	data, err := json.Marshal(lines)
	if err != nil {
		log.Printf("[cart_store] marshal failed: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), cartIOTimeout)
	defer cancel()

	if err := s.kv.Set(ctx, cartStorageKey, string(data)); err != nil {
		log.Printf("[cart_store] save failed: %v", err)
	}
}

// loadFromStorage は保存済みの明細列を読み、LOADとして一括投入する。
// 欠損・読み込み失敗・壊れたデータはすべて「空のまま」に倒す。
func (s *CartStore) loadFromStorage() {
	ctx, cancel := context.WithTimeout(context.Background(), cartIOTimeout)
	defer cancel()

	raw, err := s.kv.Get(ctx, cartStorageKey)
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			log.Printf("[cart_store] load failed: %v", err)
		}
		return
	}

	var lines []model.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		log.Printf("[cart_store] persisted cart unparseable: %v", err)
		return
	}

	s.dispatch(CartAction{Kind: CartActionLoadCart, Lines: lines})
}
