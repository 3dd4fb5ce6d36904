package gfx

import "testing"

func Test_first_vertex_goes_to_slot_1(t *testing.T) {
	var b vertexBuffer
	b.push(7, 8)
	checkSlots(t, b, [3]int{0, 7, 0}, [3]int{0, 8, 0})
}

func Test_vertex_slots_fill_in_order_1_2_0(t *testing.T) {
	var b vertexBuffer
	b.push(1, 10)
	b.push(2, 20)
	b.push(3, 30)
	checkSlots(t, b, [3]int{3, 1, 2}, [3]int{30, 10, 20})
}

func Test_fourth_vertex_wraps_around_to_slot_1(t *testing.T) {
	var b vertexBuffer
	b.push(1, 10)
	b.push(2, 20)
	b.push(3, 30)
	b.push(4, 40)
	checkSlots(t, b, [3]int{3, 4, 2}, [3]int{30, 40, 20})
}

func Test_upload_overwrites_all_slots_and_keeps_cursor(t *testing.T) {
	var b vertexBuffer
	b.push(9, 9)
	b.upload([6]int{1, 2, 3, 4, 5, 6})
	checkSlots(t, b, [3]int{1, 3, 5}, [3]int{2, 4, 6})

	b.push(7, 8)
	checkSlots(t, b, [3]int{1, 3, 7}, [3]int{2, 4, 8})
}

func Test_clear_zeroes_slots_but_not_the_cursor(t *testing.T) {
	var b vertexBuffer
	b.push(1, 1)
	b.clear()
	checkSlots(t, b, [3]int{}, [3]int{})
	b.push(2, 2)
	checkSlots(t, b, [3]int{0, 0, 2}, [3]int{0, 0, 2})
}

func Test_polygon_is_a_copy_of_the_buffer(t *testing.T) {
	var b vertexBuffer
	b.upload([6]int{1, 2, 3, 4, 5, 6})
	p := b.polygon()
	b.clear()
	if p.N != 3 || p.Xs[2] != 5 || p.Ys[2] != 6 {
		t.Errorf("polygon changed with the buffer: %+v", p)
	}
}

func checkSlots(t *testing.T, b vertexBuffer, xs, ys [3]int) {
	t.Helper()
	if b.xs != xs || b.ys != ys {
		t.Errorf("wrong slots\n%v %v expected\n%v %v gotten", xs, ys, b.xs, b.ys)
	}
}
