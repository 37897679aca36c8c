package deque

import "fp/model"

// 环形数组实现
type ArrDeque struct {
	arr []model.CalcRecord

	// 最早记录所在下标
	start int
	// 元素个数
	size int
	// 容量
	capacity int
}

// 工厂方法
func NewArrDeque(capacity int) *ArrDeque {
	if capacity <= 0 {
		capacity = 1
	}
	return &ArrDeque{
		arr:      make([]model.CalcRecord, capacity),
		start:    0,
		size:     0,
		capacity: capacity,
	}
}

func (ad *ArrDeque) Size() int {
	return ad.size
}

func (ad *ArrDeque) Get(i int) (model.CalcRecord, bool) {
	if i < 0 || i >= ad.size {
		return model.CalcRecord{}, false
	}
	return ad.arr[(ad.start+i)%ad.capacity], true
}

func (ad *ArrDeque) PushBack(r model.CalcRecord) {
	if ad.size == ad.capacity {
		// 覆盖最早的记录
		ad.start = (ad.start + 1) % ad.capacity
		ad.size--
	}
	ad.arr[(ad.start+ad.size)%ad.capacity] = r
	ad.size++
}

func (ad *ArrDeque) PopFront() (model.CalcRecord, bool) {
	if ad.size == 0 {
		return model.CalcRecord{}, false
	}
	r := ad.arr[ad.start]
	ad.start = (ad.start + 1) % ad.capacity
	ad.size--
	return r, true
}

func (ad *ArrDeque) Traverse(f func(i int, r model.CalcRecord)) {
	for i := 0; i < ad.size; i++ {
		f(i, ad.arr[(ad.start+i)%ad.capacity])
	}
}

func (ad *ArrDeque) IsFull() bool {
	return ad.size == ad.capacity
}

func (ad *ArrDeque) IsEmpty() bool {
	return ad.size == 0
}
