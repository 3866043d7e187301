package net

import (
	"log"
	"net"
)

// OutgoingIP finds the local address other machines on the LAN can reach,
// used to build the share link.
func OutgoingIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		// No route to the internet; fall back to the interface list.
		return firstIPv4().String()
	}
	defer conn.Close()

	return conn.LocalAddr().(*net.UDPAddr).IP.String()
}

func firstIPv4() net.IP {
	ifaces, err := net.Interfaces()
	if err != nil {
		log.Printf("[SHARE] Listing interfaces: %v", err)
		return net.IPv4(127, 0, 0, 1)
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, _ := iface.Addrs()
		for _, a := range addrs {
			if ipnet, ok := a.(*net.IPNet); ok && ipnet.IP.To4() != nil {
				return ipnet.IP.To4()
			}
		}
	}
	log.Println("[SHARE] No suitable local IP found, share link will use loopback")
	return net.IPv4(127, 0, 0, 1)
}
