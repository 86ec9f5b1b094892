package service

import "sync"

// 变更主题常量，service 在每次成功写入后广播对应主题
const (
	TopicClothes = "clothes"
	TopicRecords = "records"
	TopicTheme   = "theme"
)

// ChangeNotifier 在集合发生变更后向订阅者广播主题。
// 调用方持有的内存快照只是时间点副本，订阅变更事件即可在写入成功后
// 及时重新拉取，而不必自行记住"每次写完都要刷新"。
type ChangeNotifier struct {
	mu   sync.Mutex
	subs map[int]chan string
	next int
}

// NewChangeNotifier 构造 ChangeNotifier。
func NewChangeNotifier() *ChangeNotifier {
	return &ChangeNotifier{subs: make(map[int]chan string)}
}

// Subscribe 注册一个订阅通道，返回通道与取消函数。
// 通道带缓冲，广播永不阻塞写入方；订阅者消费过慢时事件会被丢弃，
// 丢事件只意味着多做一次刷新，不影响正确性。
func (n *ChangeNotifier) Subscribe() (<-chan string, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.next
	n.next++
	ch := make(chan string, 8)
	n.subs[id] = ch

	cancel := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if existing, ok := n.subs[id]; ok {
			delete(n.subs, id)
			close(existing)
		}
	}
	return ch, cancel
}

// Notify 向所有订阅者广播主题，非阻塞。
func (n *ChangeNotifier) Notify(topic string) {
	if n == nil {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.subs {
		select {
		case ch <- topic:
		default:
		}
	}
}
