package deque

import "fp/model"

// 双向链表实现
type ListDeque struct {
	head *node
	tail *node

	size     int
	capacity int
}

type node struct {
	val  model.CalcRecord
	pre  *node
	next *node
}

// 工厂方法
func NewListDeque(capacity int) *ListDeque {
	if capacity <= 0 {
		capacity = 1
	}
	head := &node{}
	tail := &node{}
	head.next = tail
	tail.pre = head

	return &ListDeque{
		head:     head,
		tail:     tail,
		size:     0,
		capacity: capacity,
	}
}

func (ld *ListDeque) Size() int {
	return ld.size
}

func (ld *ListDeque) Get(i int) (model.CalcRecord, bool) {
	if i < 0 || i >= ld.size {
		return model.CalcRecord{}, false
	}
	iter := ld.head.next
	for ; i > 0; i-- {
		iter = iter.next
	}
	return iter.val, true
}

func (ld *ListDeque) PushBack(r model.CalcRecord) {
	if ld.size == ld.capacity {
		ld.PopFront()
	}
	n := &node{val: r, pre: ld.tail.pre, next: ld.tail}
	ld.tail.pre.next = n
	ld.tail.pre = n
	ld.size++
}

func (ld *ListDeque) PopFront() (model.CalcRecord, bool) {
	if ld.size == 0 {
		return model.CalcRecord{}, false
	}
	n := ld.head.next
	ld.head.next = n.next
	n.next.pre = ld.head
	ld.size--
	return n.val, true
}

func (ld *ListDeque) Traverse(f func(i int, r model.CalcRecord)) {
	iter := ld.head.next
	for i := 0; i < ld.size; i++ {
		f(i, iter.val)
		iter = iter.next
	}
}

func (ld *ListDeque) IsFull() bool {
	return ld.size == ld.capacity
}

func (ld *ListDeque) IsEmpty() bool {
	return ld.size == 0
}
