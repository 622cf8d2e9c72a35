// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package peer

import (
	"fmt"
	"net"
	"net/netip"
)

// Family identifies the address family of a peer address.
type Family uint8

const (
	// FamilyNone marks the zero Address: no peer address was supplied.
	FamilyNone Family = iota
	// FamilyIPv4 is a 4-byte IPv4 address.
	FamilyIPv4
	// FamilyIPv6 is a 16-byte IPv6 address.
	FamilyIPv6
	// FamilyUnsupported is any other socket family (unix sockets, raw
	// link-layer addresses, ...). It is never valid input to validation.
	FamilyUnsupported
)

func (f Family) String() string {
	switch f {
	case FamilyNone:
		return "none"
	case FamilyIPv4:
		return "inet"
	case FamilyIPv6:
		return "inet6"
	default:
		return fmt.Sprintf("unsupported(%d)", uint8(f))
	}
}

// Address is the binary peer address of a socket. It is produced once per
// validation attempt and not meant to be stored.
type Address struct {
	family Family
	ip     [16]byte
	// desc names the original address for diagnostics when the family is
	// unsupported.
	desc string
}

// IPv4 returns the Address of a 4-byte IPv4 address.
func IPv4(b [4]byte) Address {
	a := Address{family: FamilyIPv4}
	copy(a.ip[:], b[:])
	return a
}

// IPv6 returns the Address of a 16-byte IPv6 address.
func IPv6(b [16]byte) Address {
	return Address{family: FamilyIPv6, ip: b}
}

// Unsupported returns an Address of an unsupported family described by desc.
func Unsupported(desc string) Address {
	return Address{family: FamilyUnsupported, desc: desc}
}

// FromNetip converts a [netip.Addr]. IPv4-mapped IPv6 addresses are treated
// as IPv4, matching what Go's network stack reports for IPv4 peers on dual
// stack sockets. The zero netip.Addr yields the zero Address.
func FromNetip(ip netip.Addr) Address {
	switch {
	case !ip.IsValid():
		return Address{}
	case ip.Is4() || ip.Is4In6():
		return IPv4(ip.Unmap().As4())
	default:
		return IPv6(ip.As16())
	}
}

// FromIP converts a [net.IP] of length 4 or 16. Any other length is an
// unsupported family.
func FromIP(ip net.IP) Address {
	switch len(ip) {
	case 0:
		return Address{}
	case net.IPv4len, net.IPv6len:
		addr, _ := netip.AddrFromSlice(ip)
		return FromNetip(addr)
	default:
		return Unsupported(fmt.Sprintf("ip of %d bytes", len(ip)))
	}
}

// FromNetAddr converts the address of a socket endpoint. TCP, UDP and IP
// addresses are supported; anything else, a unix socket for instance, is
// an unsupported family.
func FromNetAddr(addr net.Addr) Address {
	switch a := addr.(type) {
	case nil:
		return Address{}
	case *net.TCPAddr:
		return FromIP(a.IP)
	case *net.UDPAddr:
		return FromIP(a.IP)
	case *net.IPAddr:
		return FromIP(a.IP)
	default:
		return Unsupported(addr.Network() + " " + addr.String())
	}
}

// Family returns the address family.
func (a Address) Family() Family { return a.family }

// IsZero reports whether no address was supplied.
func (a Address) IsZero() bool { return a.family == FamilyNone }

// Bytes returns the raw address: 4 bytes for IPv4, 16 for IPv6 and nil otherwise.
func (a Address) Bytes() []byte {
	switch a.family {
	case FamilyIPv4:
		return a.ip[:net.IPv4len]
	case FamilyIPv6:
		return a.ip[:]
	default:
		return nil
	}
}

// Netip returns the address as a [netip.Addr], invalid for non-IP families.
func (a Address) Netip() netip.Addr {
	switch a.family {
	case FamilyIPv4:
		return netip.AddrFrom4([4]byte(a.ip[:net.IPv4len]))
	case FamilyIPv6:
		return netip.AddrFrom16(a.ip)
	default:
		return netip.Addr{}
	}
}

func (a Address) String() string {
	switch a.family {
	case FamilyIPv4, FamilyIPv6:
		return a.Netip().String()
	case FamilyUnsupported:
		return a.desc
	default:
		return "<none>"
	}
}
