package function

func Curry2[T1, T2, R any](f func(T1, T2) R) func(T1) func(T2) R {
	return func(t1 T1) func(T2) R {
		return func(t2 T2) R {
			return f(t1, t2)
		}
	}
}

func Curry3[T1, T2, T3, R any](f func(T1, T2, T3) R) func(T1) func(T2) func(T3) R {
	return func(t1 T1) func(T2) func(T3) R {
		return func(t2 T2) func(T3) R {
			return func(t3 T3) R {
				return f(t1, t2, t3)
			}
		}
	}
}

func Uncurry2[T1, T2, R any](f func(T1) func(T2) R) func(T1, T2) R {
	return func(t1 T1, t2 T2) R {
		return f(t1)(t2)
	}
}
