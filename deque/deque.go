/**
 *
 * 计算结果历史记录的有界双端队列
 * 队列供 server 的 hub 保存最近若干次计算，队满时丢弃最早的记录
 * 提供数组和链表两种实现：历史记录按序遍历为主，数组实现具有更好的局部性
 *
 */

package deque

import "fp/model"

type Deque interface {
	// 队列中的记录条数
	Size() int

	// 获取对应下标的记录，下标 0 为最早的记录
	Get(i int) (model.CalcRecord, bool)

	// 在队列结尾追加一条记录，队满时先丢弃最早的记录
	PushBack(r model.CalcRecord)

	// 取出最早的记录
	PopFront() (model.CalcRecord, bool)

	// 从最早到最新遍历
	Traverse(f func(i int, r model.CalcRecord))

	IsFull() bool

	IsEmpty() bool
}
